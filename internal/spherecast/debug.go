package spherecast

import "fmt"

// DebugLog prints a [DEBUG] line when Debug is enabled.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}
