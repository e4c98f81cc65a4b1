package spherecast

var (
	Debug    = false // set to true for verbose debug output
	Progress = false // set to true to print [RENDER] progress lines
)
