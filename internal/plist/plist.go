// Package plist edits the app's Info.plist with the same backup, write
// once, validate and roll back cycle used for project files.
package plist

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/pbxproj"
)

const (
	StoryboardKey = "UISceneStoryboardFile"

	RuleXML = "xml"
)

// one <key>/<string> pair, whole lines only, wherever it is nested
var storyboardEntry = regexp.MustCompile(`(?m)^[ \t]*<key>` + StoryboardKey + `</key>\s*<string>[^<]*</string>[ \t]*\r?\n`)

// XMLValidator checks that a file is still well formed XML.
type XMLValidator struct {
	fs afero.Fs
}

func NewXMLValidator(fs afero.Fs) *XMLValidator {
	return &XMLValidator{fs: fs}
}

func (v *XMLValidator) Validate(path string) (pbxproj.Report, error) {
	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return pbxproj.Report{Path: path}, &pbxproj.IOError{Op: "read", Path: path, Err: err}
	}
	report := pbxproj.Report{Path: path}
	if err := checkXML(data); err != nil {
		report.Violations = append(report.Violations, pbxproj.Violation{Rule: RuleXML, Offset: -1, Message: err.Error()})
	}
	return report, nil
}

func checkXML(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawRoot = true
		}
	}
	if !sawRoot {
		return errors.New("no root element")
	}
	return nil
}

// StripStoryboard removes the UISceneStoryboardFile entry so the app builds
// its window in code. A plist without the entry is left alone.
func StripStoryboard(fs afero.Fs, path string, logger *zap.Logger) (pbxproj.Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	outcome := pbxproj.Failed
	tx := pbxproj.NewTransaction(path, "strip storyboard",
		pbxproj.WithFs(fs),
		pbxproj.WithLogger(logger),
		pbxproj.WithValidator(NewXMLValidator(fs)))
	err := tx.Run(func(doc pbxproj.Document) (pbxproj.Document, error) {
		text := doc.String()
		if !strings.Contains(text, StoryboardKey) {
			logger.Info("storyboard reference already removed", zap.String("path", path))
			outcome = pbxproj.Skipped
			return doc, nil
		}
		stripped := storyboardEntry.ReplaceAllString(text, "")
		if stripped == text {
			return doc, errors.New(StoryboardKey + " is present but not as a <key>/<string> pair")
		}
		outcome = pbxproj.Applied
		return pbxproj.NewDocument(stripped), nil
	})
	if err != nil {
		return pbxproj.Failed, err
	}
	return outcome, nil
}
