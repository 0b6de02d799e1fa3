package lib

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	vlib "github.com/mcuadros/go-version"
)

type KiCadInterface struct {
	binPath string
}

/*
	Directory holding one sub directory per installed KiCad version.
*/
func kicadRoot() string {
	if root := os.Getenv("KICAD_ROOT"); root != "" {
		return root
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramFiles"), "KiCad")
	case "darwin":
		return "/Applications/KiCad"
	}
	return "/usr/lib/kicad"
}

func kicadCLI() string {
	if runtime.GOOS == "windows" {
		return "kicad-cli.exe"
	}
	return "kicad-cli"
}

/*
	Find kicad-cli, preferring the newest versioned install under the KiCad
	root and falling back to $PATH.
*/
func NewKicadInterface() (*KiCadInterface, error) {
	if versions, err := os.ReadDir(kicadRoot()); err == nil {
		if binPath := latestKicad(kicadRoot(), versions); binPath != "" {
			return &KiCadInterface{binPath}, nil
		}
	}

	path, err := exec.LookPath(kicadCLI())
	if err != nil {
		return nil, errors.New("kicad-cli not found in KiCad root or PATH")
	}

	return &KiCadInterface{filepath.Dir(path)}, nil
}

func latestKicad(root string, versions []os.DirEntry) string {
	latestVersion := ""
	for _, e := range versions {
		if !e.IsDir() {
			continue
		}
		version := e.Name()
		if _, err := os.Stat(filepath.Join(root, version, "bin", kicadCLI())); err != nil {
			continue
		}
		if latestVersion == "" || vlib.CompareSimple(latestVersion, version) == -1 {
			latestVersion = version
		}
	}

	if latestVersion == "" {
		return ""
	}
	return filepath.Join(root, latestVersion, "bin")
}

func (ki *KiCadInterface) GetBinPath() string {
	return ki.binPath
}

func (ki *KiCadInterface) ExecuteCommand(args []string, cwd string) error {
	cmd := exec.Command(filepath.Join(ki.binPath, kicadCLI()), args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	cmd.Dir = cwd

	return cmd.Run()
}

/*
	Export the footprint positions of a .kicad_pcb as CSV in millimeters.
*/
func (ki *KiCadInterface) ExportPositions(pcb, dst string) error {
	return ki.ExecuteCommand([]string{
		"pcb", "export", "pos",
		"--format", "csv", "--units", "mm", "--side", "both",
		"--output", dst, pcb,
	}, "")
}

/*
	ReadParts reads a placement report, choosing the reader by extension:
	.rpt module reports, .csv placement lists, .pos files in either KiCad
	format, or a .kicad_pcb that is exported through kicad-cli first.
*/
func ReadParts(src string) ([]*Part, error) {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".rpt":
		return ReadRptFile(src)
	case ".csv":
		return ReadCPL(src)
	case ".pos":
		return ReadPos(src)
	case ".kicad_pcb":
		ki, err := NewKicadInterface()
		if err != nil {
			return nil, err
		}

		tmp, err := os.MkdirTemp("", "rpt2pnp")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(tmp)

		dst := filepath.Join(tmp, "positions.csv")
		if err := ki.ExportPositions(src, dst); err != nil {
			return nil, fmt.Errorf("kicad-cli failed: %w", err)
		}
		return ReadCPL(dst)
	}

	return nil, fmt.Errorf("unknown report format: %s", src)
}
