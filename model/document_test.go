package model_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/scenemerge/model"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "robot.xml")
	require.NoError(t, os.WriteFile(scene, []byte(`<mujoco model="robot"><worldbody/></mujoco>`), 0o644))

	doc, err := model.Load(context.Background(), scene)
	require.NoError(t, err)
	assert.Equal(t, model.RootTag, doc.Root.Tag)
	assert.Equal(t, scene, doc.Path)
	assert.NotZero(t, doc.Fingerprint)
	assert.Equal(t, dir, doc.Dir())
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.xml")
	require.NoError(t, os.WriteFile(malformed, []byte(`<mujoco><unclosed>`), 0o644))
	wrongRoot := filepath.Join(dir, "wrongroot.xml")
	require.NoError(t, os.WriteFile(wrongRoot, []byte(`<robot name="arm"/>`), 0o644))

	testCases := []struct {
		description string
		path        string
	}{
		{description: "missing file", path: filepath.Join(dir, "absent.xml")},
		{description: "malformed document", path: malformed},
		{description: "missing root tag", path: wrongRoot},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := model.Load(context.Background(), testCase.path)
			assert.Error(t, err, testCase.description)
			if err != nil {
				assert.Contains(t, err.Error(), testCase.path, "errors name the offending file")
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	first, err := model.Fingerprint([]byte(`<mujoco/>`))
	require.NoError(t, err)
	same, err := model.Fingerprint([]byte(`<mujoco/>`))
	require.NoError(t, err)
	other, err := model.Fingerprint([]byte(`<mujoco model="x"/>`))
	require.NoError(t, err)
	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "merged.xml")

	doc := etree.NewDocument()
	root := doc.CreateElement(model.RootTag)
	root.CreateAttr("model", "combined")
	root.CreateElement("worldbody")

	require.NoError(t, model.Save(context.Background(), doc, output))

	loaded, err := model.Load(context.Background(), output)
	require.NoError(t, err)
	assert.Equal(t, "combined", loaded.Root.SelectAttrValue("model", ""))
	assert.NotNil(t, loaded.Root.SelectElement("worldbody"))
}
