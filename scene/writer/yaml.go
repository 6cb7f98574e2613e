package writer

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/achilleasa/rigel/log"
	"github.com/achilleasa/rigel/scene"
)

type yamlSceneWriter struct {
	logger log.Logger
	target io.Writer
	name   string
}

// Create a new yaml scene writer that streams to target.
func newYAMLSceneWriter(target io.Writer, name string) *yamlSceneWriter {
	return &yamlSceneWriter{
		logger: log.New("yaml scene writer"),
		target: target,
		name:   name,
	}
}

// Write scene definition as a yaml scene document.
func (w *yamlSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef(`writing scene to "%s"`, w.name)
	start := time.Now()

	doc, err := docFromScene(sc)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("writer: could not serialize scene: %v", err)
	}
	if _, err = w.target.Write(data); err != nil {
		return fmt.Errorf("writer: could not write scene data: %v", err)
	}

	w.logger.Noticef("wrote scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
