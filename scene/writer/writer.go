package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/rigel/scene"
)

// Scene definitions written to StdoutPath stream to standard output.
const StdoutPath = "-"

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition.
	Write(sc *scene.Scene) error
}

// Write a scene to the file indicated by pathToFile, selecting the encoder
// from the file extension (.json, .yaml or .yml). The special path "-"
// streams YAML data to stdout instead.
func WriteScene(sc *scene.Scene, pathToFile string) error {
	if pathToFile == StdoutPath {
		return WriteSceneTo(sc, os.Stdout, pathToFile)
	}

	switch ext := strings.ToLower(filepath.Ext(pathToFile)); ext {
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("writer: unsupported scene format '%s'", ext)
	}

	f, err := os.Create(pathToFile)
	if err != nil {
		return fmt.Errorf("writer: could not create scene file: %v", err)
	}
	defer f.Close()

	return WriteSceneTo(sc, f, pathToFile)
}

// Write a scene definition to an opened output stream. Targets named with a
// .json extension serialize as json; everything else serializes as YAML.
func WriteSceneTo(sc *scene.Scene, target io.Writer, name string) error {
	var w Writer
	if strings.HasSuffix(name, ".json") {
		w = newJSONSceneWriter(target, name)
	} else {
		w = newYAMLSceneWriter(target, name)
	}
	return w.Write(sc)
}
