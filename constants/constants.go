package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetAddr() string {
	addr := os.Getenv("CHORALEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetArtifactBucket() string {
	bucket := os.Getenv("ARTIFACT_BUCKET")
	if bucket != "" {
		return bucket
	}

	panic("ARTIFACT_BUCKET environment variable is not set!")
}

// NoteVelocity is the fixed velocity for every emitted note-on.
const NoteVelocity = 80

// DivisionsPerQuarter is fixed at 1 in emitted documents.
const DivisionsPerQuarter = 1

// TicksPerQuarter is the metric resolution of event-sequence ticks.
const TicksPerQuarter = 480
