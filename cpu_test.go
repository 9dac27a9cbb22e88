package ljson

import "testing"

func TestSupportedCPUAlwaysTrue(t *testing.T) {
	if !SupportedCPU() {
		t.Fatal("SupportedCPU() must always be true for this pure-Go package")
	}
}

func TestDetectCPUFeaturesDoesNotPanic(t *testing.T) {
	_ = DetectCPUFeatures()
}
