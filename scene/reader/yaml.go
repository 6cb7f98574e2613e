package reader

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/achilleasa/rigel/asset"
	"github.com/achilleasa/rigel/log"
	"github.com/achilleasa/rigel/scene"
)

type yamlSceneReader struct {
	logger log.Logger
}

// Create a new yaml scene reader.
func newYAMLSceneReader() *yamlSceneReader {
	return &yamlSceneReader{
		logger: log.New("yaml scene reader"),
	}
}

// Read scene definition. The document is either a bare object list or a
// scene document with camera and objects keys; an empty document yields an
// empty scene.
func (r *yamlSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, fmt.Errorf("reader: could not read scene data: %v", err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reader: could not parse scene: %v", err)
	}

	var raw rawScene
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			err = root.Decode(&raw.Objects)
		case yaml.MappingNode:
			err = root.Decode(&raw)
		default:
			return nil, fmt.Errorf("reader: scene root must be an object list or a scene document")
		}
		if err != nil {
			return nil, fmt.Errorf("reader: could not parse scene: %v", err)
		}
	}

	sc, err := buildScene(raw)
	if err != nil {
		return nil, err
	}

	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}
