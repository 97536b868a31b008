package fs

// Candidate glob patterns and conventional install directories for Windows.
var (
	runtimeLibPatterns = []string{"cudart64_*.dll", "cudart32_*.dll"}
	driverLibPatterns  = []string{"nvcuda.dll"}

	conventionalLibDirs = []string{
		`C:\Program Files\NVIDIA GPU Computing Toolkit\CUDA\v*\bin`,
		`C:\Windows\System32`,
	}

	conventionalBinDirs = []string{
		`C:\Program Files\NVIDIA GPU Computing Toolkit\CUDA\v*\bin`,
	}

	// DLLs are resolved through PATH on Windows.
	libraryPathVar = "PATH"

	nvccName         = "nvcc.exe"
	smiName          = "nvidia-smi.exe"
	hostCompilerName = "cl.exe"

	driverMandatory = true
)
