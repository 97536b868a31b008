package fs

// Candidate glob patterns and conventional install directories for Linux.
// Directory lists are ordered by priority; versioned toolkit installs are
// matched through the glob in the pattern itself.
var (
	runtimeLibPatterns = []string{"libcudart.so*"}
	driverLibPatterns  = []string{"libcuda.so*"}

	conventionalLibDirs = []string{
		"/usr/local/cuda/lib64",
		"/usr/local/cuda/lib",
		"/usr/local/cuda-*/lib64",
		"/opt/cuda/lib64",
		"/opt/cuda/lib",
		"/usr/lib/x86_64-linux-gnu",
		"/usr/lib/aarch64-linux-gnu",
		"/usr/lib64",
		"/usr/lib",
	}

	conventionalBinDirs = []string{
		"/usr/local/cuda/bin",
		"/usr/local/cuda-*/bin",
		"/opt/cuda/bin",
	}

	// libraryPathVar is the process-level library search path variable.
	libraryPathVar = "LD_LIBRARY_PATH"

	nvccName         = "nvcc"
	smiName          = "nvidia-smi"
	hostCompilerName = "gcc"

	// The driver stack is mandatory on Linux: without it no device can run
	// the generated code.
	driverMandatory = true
)
