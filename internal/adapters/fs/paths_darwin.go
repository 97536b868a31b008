package fs

// Candidate glob patterns and conventional install directories for macOS.
var (
	runtimeLibPatterns = []string{"libcudart.dylib", "libcudart.*.dylib"}
	driverLibPatterns  = []string{"libcuda.dylib", "libcuda.*.dylib"}

	conventionalLibDirs = []string{
		"/usr/local/cuda/lib",
		"/Developer/NVIDIA/CUDA-*/lib",
		"/usr/local/lib",
	}

	conventionalBinDirs = []string{
		"/usr/local/cuda/bin",
		"/Developer/NVIDIA/CUDA-*/bin",
	}

	libraryPathVar = "DYLD_LIBRARY_PATH"

	nvccName         = "nvcc"
	smiName          = "nvidia-smi"
	hostCompilerName = "clang"

	// macOS toolkit installs legitimately ship without the driver (building
	// on a machine with no device attached), so a missing driver is only a
	// warning here.
	driverMandatory = false
)
