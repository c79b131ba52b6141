package env

import (
	"os"
)

// PodName is the kubernetes pod name, falling back to the hostname
// when running outside a cluster.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}
