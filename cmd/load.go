package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/abrantigan/KMD-Display/constants"
	"github.com/abrantigan/KMD-Display/document"
	"github.com/abrantigan/KMD-Display/model"
	"github.com/abrantigan/KMD-Display/snapshot"
	"github.com/abrantigan/KMD-Display/util"
)

// LoadDocument reads path and produces a validated Document. Snapshot
// artifacts are recognized by their marker; a corrupt embed is logged and
// the bytes fall through to plain JSON loading.
func LoadDocument(path string) (*model.Document, error) {
	data := util.ReadFileOrPanic(path)
	doc, err := snapshot.Detect(data)
	if err != nil {
		logrus.Warnf("Ignoring embedded snapshot in %v: %v", path, err)
	} else if doc != nil {
		return doc, nil
	}
	return document.Parse(data)
}

func loadTemplate() []byte {
	if path := constants.GetTemplatePath(); path != "" {
		return util.ReadFileOrPanic(path)
	}
	return snapshot.Template()
}
