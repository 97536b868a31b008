// Package fs implements host filesystem discovery: libraries, executables
// and source fingerprints.
package fs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/cuprov/internal/envconfig"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator implements ports.Locator over the host filesystem.
type Locator struct {
	logger ports.Logger

	// ExtraRoots are additional toolkit roots from the settings file,
	// searched after the environment overrides.
	ExtraRoots []string

	// HostCompiler overrides the platform-default host compiler name.
	HostCompiler string
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// LocateRuntimeLibrary finds the CUDA runtime shared library.
func (l *Locator) LocateRuntimeLibrary() (string, error) {
	if path := l.searchLibrary(runtimeLibPatterns); path != "" {
		return path, nil
	}
	return "", zerr.With(domain.ErrRuntimeNotFound, "patterns", strings.Join(runtimeLibPatterns, ","))
}

// LocateDriverLibrary finds the driver management library. Absence is an
// expected state, reported as an empty path with a nil error.
func (l *Locator) LocateDriverLibrary() (string, error) {
	return l.searchLibrary(driverLibPatterns), nil
}

// LocateDiagnostic finds the driver diagnostic executable without validating
// it. Absence is an empty path with a nil error.
func (l *Locator) LocateDiagnostic() (string, error) {
	if path, err := exec.LookPath(smiName); err == nil {
		return resolveLinks(path), nil
	}
	for _, dir := range l.binDirs() {
		matches, _ := filepath.Glob(filepath.Join(dir, smiName))
		if len(matches) > 0 {
			return resolveLinks(matches[0]), nil
		}
	}
	return "", nil
}

// LocateToolchain finds nvcc and a compatible host compiler.
func (l *Locator) LocateToolchain() (domain.Toolchain, error) {
	var nvcc string
	for _, dir := range l.binDirs() {
		matches, _ := filepath.Glob(filepath.Join(dir, nvccName))
		if len(matches) > 0 {
			nvcc = resolveLinks(matches[0])
			break
		}
	}
	if nvcc == "" {
		if path, err := exec.LookPath(nvccName); err == nil {
			nvcc = resolveLinks(path)
		}
	}
	if nvcc == "" {
		return domain.Toolchain{}, zerr.With(domain.ErrCompilerNotFound, "compiler", nvccName)
	}

	hostName := l.HostCompiler
	if hostName == "" {
		hostName = hostCompilerName
	}
	host, err := exec.LookPath(hostName)
	if err != nil {
		return domain.Toolchain{}, zerr.With(domain.ErrCompilerNotFound, "compiler", hostName)
	}

	return domain.Toolchain{Nvcc: nvcc, HostCompiler: resolveLinks(host)}, nil
}

// DriverMandatory reports whether a missing driver is fatal on this platform.
func (l *Locator) DriverMandatory() bool {
	return driverMandatory
}

// searchLibrary returns the first library matching any of the name patterns,
// searching override roots, the process library path and the conventional
// directories, in that order. Symlinks are resolved so aliased installs
// (libcudart.so -> libcudart.so.10.2 -> ...) land on the concrete file.
func (l *Locator) searchLibrary(namePatterns []string) string {
	var seen []string
	for _, dir := range l.libDirs() {
		for _, name := range namePatterns {
			matches, _ := filepath.Glob(filepath.Join(dir, name))
			for _, match := range matches {
				path := resolveLinks(match)
				if slices.Contains(seen, path) {
					continue
				}
				seen = append(seen, path)
				info, err := os.Stat(path)
				if err != nil || info.IsDir() {
					continue
				}
				l.logger.Info(fmt.Sprintf("found %s", path))
				return path
			}
		}
	}
	return ""
}

// libDirs returns library directory patterns in search priority order.
func (l *Locator) libDirs() []string {
	var dirs []string
	for _, root := range l.overrideRoots() {
		dirs = append(dirs, filepath.Join(root, "lib64"), filepath.Join(root, "lib"), filepath.Join(root, "bin"))
	}
	for _, p := range filepath.SplitList(os.Getenv(libraryPathVar)) {
		if abs, err := filepath.Abs(p); err == nil {
			dirs = append(dirs, abs)
		}
	}
	return append(dirs, conventionalLibDirs...)
}

// binDirs returns executable directory patterns in search priority order.
func (l *Locator) binDirs() []string {
	var dirs []string
	for _, root := range l.overrideRoots() {
		dirs = append(dirs, filepath.Join(root, "bin"))
	}
	return append(dirs, conventionalBinDirs...)
}

func (l *Locator) overrideRoots() []string {
	var roots []string
	if root, ok := envconfig.ToolkitRoot(); ok {
		roots = append(roots, root)
	}
	return append(roots, l.ExtraRoots...)
}

// resolveLinks follows symlinks to the concrete file, falling back to the
// original path when a link cannot be read.
func resolveLinks(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		return abs
	}
	return resolved
}
