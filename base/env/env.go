package env

import (
	"os"
)

// PodName is the pod serving the api, e.g. mintstake-api-6868d88fbd-bz8zv.
// Outside a cluster it falls back to the host name.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}
