// Command texcoreinfo prints the container header texcore resolved from a
// DDS, KTX, or PVR file: dimensions, pixel format, colour profile, alpha
// mode, mip count, and any parser warnings. It does not decode pixel data
// or convert between formats.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goopsie/texcore/pkg/dds"
	"github.com/goopsie/texcore/pkg/ktx"
	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/pvr"
)

var strict bool

func init() {
	flag.BoolVar(&strict, "strict", false, "promote conditional parser warnings to fatal errors")
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: texcoreinfo [-strict] <file.dds|.ktx|.ktx2|.pvr>\n")
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dds":
		img, st, err := dds.Decode(f, strict)
		if err != nil {
			return fmt.Errorf("decode dds: %w", err)
		}
		printCommon(path, "DDS", img.Width, img.Height, img.Format, img.ColourProfile,
			img.AlphaMode, img.IsCubemap, img.NumMipLevels, len(img.Surfaces), uint32(st), st.Fatal())

	case ".ktx", ".ktx2":
		img, st, err := ktx.Decode(f, strict)
		if err != nil {
			return fmt.Errorf("decode ktx: %w", err)
		}
		printCommon(path, "KTX", img.Width, img.Height, img.Format, img.ColourProfile,
			img.AlphaMode, img.IsCubemap, img.NumMipLevels, len(img.Surfaces), uint32(st), st.Fatal())

	case ".pvr":
		img, st, err := pvr.Decode(f, strict)
		if err != nil {
			return fmt.Errorf("decode pvr: %w", err)
		}
		printCommon(path, fmt.Sprintf("PVR V%d", img.Version), img.Width, img.Height, img.Format, img.ColourProfile,
			img.AlphaMode, img.IsCubemap, img.NumMipLevels, img.NumSurfaces*img.NumFaces, uint32(st), st.Fatal())
		if img.Depth > 1 {
			fmt.Printf("Depth: %d\n", img.Depth)
		}
		if img.OrientFlipX || img.OrientFlipY {
			fmt.Printf("Orientation: flipX=%v flipY=%v\n", img.OrientFlipX, img.OrientFlipY)
		}

	default:
		return fmt.Errorf("unrecognized extension %q (expected .dds, .ktx, .ktx2, or .pvr)", filepath.Ext(path))
	}

	return nil
}

func printCommon(path, container string, width, height int, format pixfmt.Format, profile interface{ String() string },
	alpha interface{ String() string }, cubemap bool, numMips, numSurfaces int, states uint32, fatal bool) {
	fmt.Printf("File: %s\n", path)
	fmt.Printf("Container: %s\n", container)
	fmt.Printf("Dimensions: %dx%d\n", width, height)
	fmt.Printf("Format: %s\n", pixfmt.Name(format))
	fmt.Printf("Colour profile: %s\n", profile.String())
	fmt.Printf("Alpha mode: %s\n", alpha.String())
	fmt.Printf("Cubemap: %v\n", cubemap)
	fmt.Printf("Mip levels: %d\n", numMips)
	fmt.Printf("Surfaces: %d\n", numSurfaces)
	fmt.Printf("Parser states: %#x\n", states)
	if fatal {
		fmt.Println("Warning: fatal condition recorded despite successful parse (non-strict mode)")
	}
}
