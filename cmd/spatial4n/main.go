/*
Copyright © 2026 the Spatial4n authors.
This file is part of Spatial4n.

Spatial4n is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Spatial4n is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Spatial4n.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command spatial4n inspects and converts shapes from the command line.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	spatial4n "github.com/Spatial4n/Spatial4n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	root := &cobra.Command{
		Use:   "spatial4n",
		Short: "spatial4n relates, measures and converts geographic shapes",
		Long: `spatial4n parses shapes from Well-Known Text, including the ENVELOPE and
BUFFER extensions, and relates, measures and converts them using either a
geodetic (spherical) or a Euclidean model.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.GetBool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.Bool("geo", true, "use the geodetic (spherical) model instead of Euclidean")
	pf.String("calculator", "haversine",
		"distance calculator: haversine, lawOfCosines, vincentySphere, cartesian or cartesian^2")
	pf.String("dateline-rule", "width180",
		"dateline interpretation: none, width180 or counterClockwiseRectangle")
	pf.String("validation-rule", "none",
		"geometry validation: none, error, repairConvexHull or repairBuffer0")
	pf.Bool("auto-index", false, "index geometries on creation")
	pf.Bool("allow-multi-overlap", false, "union overlapping multi-polygon parts")
	pf.Int("circle-segments", 64, "polygon segments used to approximate circles")
	pf.Bool("verbose", false, "enable debug logging")
	if err := cfg.BindPFlags(pf); err != nil {
		panic(err)
	}

	root.AddCommand(newRelateCmd(cfg))
	root.AddCommand(newInfoCmd(cfg))
	root.AddCommand(newConvertCmd(cfg))
	return root
}

// contextFromConfig builds a SpatialContext from the bound flags.
func contextFromConfig(cfg *viper.Viper) (*spatial4n.SpatialContext, error) {
	return spatial4n.MakeSpatialContext(map[string]string{
		"IsGeo":              fmt.Sprint(cfg.GetBool("geo")),
		"DistanceCalculator": cfg.GetString("calculator"),
		"DatelineRule":       cfg.GetString("dateline-rule"),
		"ValidationRule":     cfg.GetString("validation-rule"),
		"AutoIndex":          fmt.Sprint(cfg.GetBool("auto-index")),
		"AllowMultiOverlap":  fmt.Sprint(cfg.GetBool("allow-multi-overlap")),
		"CircleSegments":     fmt.Sprint(cfg.GetInt("circle-segments")),
	})
}

func newRelateCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "relate WKT1 WKT2",
		Short: "Print the spatial relation of the first shape to the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := contextFromConfig(cfg)
			if err != nil {
				return err
			}
			a, err := ctx.ReadWKT(args[0])
			if err != nil {
				return fmt.Errorf("first shape: %v", err)
			}
			b, err := ctx.ReadWKT(args[1])
			if err != nil {
				return fmt.Errorf("second shape: %v", err)
			}
			logrus.WithFields(logrus.Fields{"a": a, "b": b}).Debug("relating shapes")
			rel, err := a.Relate(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}
}

func newInfoCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info WKT",
		Short: "Print the bounding box, center and area of a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := contextFromConfig(cfg)
			if err != nil {
				return err
			}
			s, err := ctx.ReadWKT(args[0])
			if err != nil {
				return err
			}
			bbox, err := spatial4n.WriteWKT(s.BoundingBox())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bbox:    %s\n", bbox)
			fmt.Fprintf(out, "center:  %v\n", s.Center())
			fmt.Fprintf(out, "hasArea: %v\n", s.HasArea())
			fmt.Fprintf(out, "area:    %v\n", s.Area(ctx.DistanceCalculator()))
			return nil
		},
	}
}

func newConvertCmd(cfg *viper.Viper) *cobra.Command {
	var to, from string
	cmd := &cobra.Command{
		Use:   "convert SHAPE",
		Short: "Convert a shape between WKT and hex-encoded binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := contextFromConfig(cfg)
			if err != nil {
				return err
			}
			var s spatial4n.Shape
			switch from {
			case "wkt":
				s, err = ctx.ReadWKT(args[0])
			case "binary":
				var data []byte
				data, err = hex.DecodeString(args[0])
				if err == nil {
					s, err = spatial4n.NewBinaryCodec(ctx).ReadShape(bytes.NewReader(data))
				}
			default:
				err = fmt.Errorf("unknown input format %q", from)
			}
			if err != nil {
				return err
			}
			switch to {
			case "wkt":
				out, err := spatial4n.WriteWKT(s)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			case "binary":
				var b strings.Builder
				if err := spatial4n.NewBinaryCodec(ctx).WriteShape(&hexWriter{&b}, s); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), b.String())
				return nil
			default:
				return fmt.Errorf("unknown output format %q", to)
			}
		},
	}
	cmd.Flags().StringVar(&from, "from", "wkt", "input format: wkt or binary (hex)")
	cmd.Flags().StringVar(&to, "to", "wkt", "output format: wkt or binary (hex)")
	return cmd
}

// hexWriter hex-encodes everything written through it.
type hexWriter struct{ b *strings.Builder }

func (w *hexWriter) Write(p []byte) (int, error) {
	w.b.WriteString(hex.EncodeToString(p))
	return len(p), nil
}
