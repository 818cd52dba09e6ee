// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanesinfo reports the SIMD backend this binary was compiled
// against: backend name, vector width, and the lane count for each
// supported element type.
//
// Because backend selection happens at build time, the output describes
// the build, not the host. Rebuild with different GOARCH, GOEXPERIMENT
// or build tags to compare backends:
//
//	lanesinfo
//	GOEXPERIMENT=simd lanesinfo
//	GOEXPERIMENT=simd go run . -tags lanes_avx512
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gosimd/go-lanes/lanes"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "lanesinfo",
		Short:   "Report the compiled SIMD backend and its vector geometry",
		Version: version,
		RunE:    runInfo,
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "lanes",
		Short: "Print only the per-type lane counts",
		RunE:  runLanes,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	fmt.Printf("backend:    %s\n", lanes.Name())
	fmt.Printf("width:      %d bytes (%d bits)\n", lanes.Width(), lanes.Width()*8)
	fmt.Printf("alignment:  %d bytes\n", lanes.AlignOf[float32]())
	fmt.Printf("arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	return runLanes(cmd, args)
}

func runLanes(cmd *cobra.Command, args []string) error {
	fmt.Println("lanes per vector:")
	fmt.Printf("  float32  %3d\n", lanes.MaxLanes[float32]())
	fmt.Printf("  float64  %3d\n", lanes.MaxLanes[float64]())
	fmt.Printf("  int8     %3d\n", lanes.MaxLanes[int8]())
	fmt.Printf("  int16    %3d\n", lanes.MaxLanes[int16]())
	fmt.Printf("  int32    %3d\n", lanes.MaxLanes[int32]())
	fmt.Printf("  int64    %3d\n", lanes.MaxLanes[int64]())
	fmt.Printf("  uint8    %3d\n", lanes.MaxLanes[uint8]())
	fmt.Printf("  uint16   %3d\n", lanes.MaxLanes[uint16]())
	fmt.Printf("  uint32   %3d\n", lanes.MaxLanes[uint32]())
	fmt.Printf("  uint64   %3d\n", lanes.MaxLanes[uint64]())
	return nil
}
