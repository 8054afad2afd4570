// Command sysinfo-util prints one telemetry snapshot as JSON. Handy for
// checking what the sampler sees on a given machine without starting the
// full application.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hiudyy/DashLayer/internal/sysinfo"
)

func main() {
	info := sysinfo.NewSampler().Sample()

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode system info: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
