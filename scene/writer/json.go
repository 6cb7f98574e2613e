package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/rigel/log"
	"github.com/achilleasa/rigel/scene"
)

type jsonSceneWriter struct {
	logger log.Logger
	target io.Writer
	name   string
}

// Create a new json scene writer that streams to target.
func newJSONSceneWriter(target io.Writer, name string) *jsonSceneWriter {
	return &jsonSceneWriter{
		logger: log.New("json scene writer"),
		target: target,
		name:   name,
	}
}

// Write scene definition as an indented json scene document.
func (w *jsonSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef(`writing scene to "%s"`, w.name)
	start := time.Now()

	doc, err := docFromScene(sc)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("writer: could not serialize scene: %v", err)
	}
	data = append(data, '\n')
	if _, err = w.target.Write(data); err != nil {
		return fmt.Errorf("writer: could not write scene data: %v", err)
	}

	w.logger.Noticef("wrote scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
