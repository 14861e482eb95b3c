/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxproj

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/pbxobject"
)

const (
	SectionBuildFile                  = "PBXBuildFile"
	SectionContainerItemProxy         = "PBXContainerItemProxy"
	SectionCopyFilesBuildPhase        = "PBXCopyFilesBuildPhase"
	SectionFileReference              = "PBXFileReference"
	SectionFrameworksBuildPhase       = "PBXFrameworksBuildPhase"
	SectionGroup                      = "PBXGroup"
	SectionNativeTarget               = "PBXNativeTarget"
	SectionProject                    = "PBXProject"
	SectionResourcesBuildPhase        = "PBXResourcesBuildPhase"
	SectionShellScriptBuildPhase      = "PBXShellScriptBuildPhase"
	SectionSourcesBuildPhase          = "PBXSourcesBuildPhase"
	SectionConfigurationList          = "XCConfigurationList"
	SectionRemoteSwiftPackageRef      = "XCRemoteSwiftPackageReference"
	SectionSwiftPackageProductDepency = "XCSwiftPackageProductDependency"
)

// Where each section goes when a project does not have it yet. Xcode keeps
// sections sorted by name, the anchors follow that order.
var (
	buildFileAnchors = []Anchor{
		{SectionContainerItemProxy, Before},
		{SectionCopyFilesBuildPhase, Before},
		{SectionFileReference, Before},
		{SectionFrameworksBuildPhase, Before},
		{SectionGroup, Before},
		{SectionNativeTarget, Before},
		{SectionProject, Before},
	}
	fileReferenceAnchors = []Anchor{
		{SectionFrameworksBuildPhase, Before},
		{SectionGroup, Before},
		{SectionBuildFile, After},
	}
	groupAnchors = []Anchor{
		{SectionNativeTarget, Before},
		{SectionFrameworksBuildPhase, After},
		{SectionFileReference, After},
	}
	shellScriptAnchors = []Anchor{
		{SectionSourcesBuildPhase, Before},
		{SectionResourcesBuildPhase, After},
		{SectionProject, After},
	}
	packageReferenceAnchors = []Anchor{
		{SectionSwiftPackageProductDepency, Before},
		{SectionConfigurationList, After},
	}
	packageDependencyAnchors = []Anchor{
		{SectionRemoteSwiftPackageRef, After},
		{SectionConfigurationList, After},
	}
)

const (
	defaultBuildActionMask = 2147483647
	defaultShellPath       = "/bin/sh"
)

// CommentValue is an identifier together with the comment Xcode writes
// after it, as in `ABC /* Foo.swift */`.
type CommentValue struct {
	Value   string
	Comment string
}

func (c CommentValue) String() string {
	return withComment(quote(c.Value), c.Comment)
}

func isCommentValue(obj interface{}) bool {
	_, ok := obj.(CommentValue)
	return ok
}

// Outcome tells whether an operation changed the project.
type Outcome int8

const (
	Applied Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// SwiftPackage is a remote Swift package and the product linked from it.
type SwiftPackage struct {
	Name           string
	RepositoryURL  string
	MinimumVersion string
	// Target is the native target that links the product. Empty means the
	// first target.
	Target string
}

func (s SwiftPackage) validate() error {
	switch {
	case s.Name == "":
		return errors.New("swift package: name is required")
	case s.RepositoryURL == "":
		return fmt.Errorf("swift package %s: repository url is required", s.Name)
	case s.MinimumVersion == "":
		return fmt.Errorf("swift package %s: minimum version is required", s.Name)
	}
	return nil
}

// Fingerprint matches the package name together with the owner/repo part
// of its URL.
func (s SwiftPackage) Fingerprint() Fingerprint {
	slug := strings.TrimSuffix(strings.TrimSuffix(s.RepositoryURL, "/"), ".git")
	parts := strings.Split(slug, "/")
	if len(parts) >= 2 {
		slug = parts[len(parts)-2] + "/" + parts[len(parts)-1]
	}
	return Fingerprint{Primary: s.Name, Secondary: slug}
}

func (s SwiftPackage) referenceComment() string {
	return SectionRemoteSwiftPackageRef + ` "` + s.Name + `"`
}

// ShellScript is a Run Script build phase.
type ShellScript struct {
	Name        string
	Script      string
	ShellPath   string
	InputPaths  []string
	OutputPaths []string
	Target      string
}

// PbxProject edits one project.pbxproj file. Every exported operation runs
// as its own transaction.
type PbxProject struct {
	filePath string
	opts     options
	logger   *zap.Logger
}

func Open(filePath string, opts ...Option) (*PbxProject, error) {
	o := buildOptions(opts)
	if _, err := o.fs.Stat(filePath); err != nil {
		return nil, &IOError{Op: "open", Path: filePath, Err: err}
	}
	return &PbxProject{
		filePath: filePath,
		opts:     o,
		logger:   o.logger.With(zap.String("path", filePath)),
	}, nil
}

func (p *PbxProject) FilePath() string {
	return p.filePath
}

// Document reads the current content without modifying anything.
func (p *PbxProject) Document() (Document, error) {
	data, err := afero.ReadFile(p.opts.fs, p.filePath)
	if err != nil {
		return Document{}, &IOError{Op: "read", Path: p.filePath, Err: err}
	}
	return NewDocument(string(data)), nil
}

// Validate runs the configured validator on the file as it is now.
func (p *PbxProject) Validate() (Report, error) {
	return p.opts.validator.Validate(p.filePath)
}

// TargetNames lists the native targets in document order.
func (p *PbxProject) TargetNames() ([]string, error) {
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}
	entries, err := Entries(doc, SectionNativeTarget)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok, err := e.Attribute(doc, "name")
		if err != nil {
			return nil, err
		}
		if !ok {
			name = e.Comment
		}
		names = append(names, name)
	}
	return names, nil
}

type mutation func(doc Document) (Document, Outcome, error)

func (p *PbxProject) run(op string, mutate mutation) (Outcome, error) {
	outcome := Failed
	tx := NewTransaction(p.filePath, op,
		WithFs(p.opts.fs),
		WithLogger(p.opts.logger),
		WithValidator(p.opts.validator))
	err := tx.Run(func(doc Document) (Document, error) {
		out, o, err := mutate(doc)
		outcome = o
		return out, err
	})
	if err != nil {
		return Failed, err
	}
	return outcome, nil
}

// AddSwiftPackage registers a remote Swift package: the package reference,
// the product dependency, the Frameworks build file, the project's
// packageReferences and the target's packageProductDependencies and
// Frameworks phase.
func (p *PbxProject) AddSwiftPackage(pkg SwiftPackage) (Outcome, error) {
	if err := pkg.validate(); err != nil {
		return Failed, err
	}
	logger := p.logger.With(zap.String("package", pkg.Name))
	return p.run("add swift package "+pkg.Name, func(doc Document) (Document, Outcome, error) {
		if Exists(doc, pkg.Fingerprint()) {
			logger.Info("swift package already present")
			return doc, Skipped, nil
		}

		ids, err := nextIDs(NewIDGenerator(doc), 3)
		if err != nil {
			return doc, Failed, err
		}
		refID, depID, buildID := ids[0], ids[1], ids[2]
		ref := CommentValue{refID, pkg.referenceComment()}
		dep := CommentValue{depID, pkg.Name}
		build := CommentValue{buildID, pkg.Name + " in Frameworks"}

		refObj := pbxobject.NewObjectWithData([]pbxobject.ObjectItem{
			pbxobject.NewObjectItem("isa", SectionRemoteSwiftPackageRef),
			pbxobject.NewObjectItem("repositoryURL", pkg.RepositoryURL),
			pbxobject.NewObjectItem("requirement", pbxobject.NewObjectWithData([]pbxobject.ObjectItem{
				pbxobject.NewObjectItem("kind", "upToNextMajorVersion"),
				pbxobject.NewObjectItem("minimumVersion", pkg.MinimumVersion),
			})),
		})
		if doc, err = addEntry(doc, SectionRemoteSwiftPackageRef, RenderEntry(ref.Value, ref.Comment, refObj), packageReferenceAnchors...); err != nil {
			return doc, Failed, err
		}

		depObj := pbxobject.NewObjectWithData([]pbxobject.ObjectItem{
			pbxobject.NewObjectItem("isa", SectionSwiftPackageProductDepency),
			pbxobject.NewObjectItem("package", ref),
			pbxobject.NewObjectItem("productName", pkg.Name),
		})
		if doc, err = addEntry(doc, SectionSwiftPackageProductDepency, RenderEntry(dep.Value, dep.Comment, depObj), packageDependencyAnchors...); err != nil {
			return doc, Failed, err
		}

		project, err := projectEntry(doc)
		if err != nil {
			return doc, Failed, err
		}
		if doc, err = AppendListItem(doc, project, "packageReferences", ref.String()); err != nil {
			return doc, Failed, err
		}

		target, ok, err := nativeTarget(doc, pkg.Target)
		if err != nil {
			return doc, Failed, err
		}
		if !ok {
			logger.Warn("project has no native target, package product not linked")
			return doc, Applied, nil
		}
		if doc, err = AppendListItem(doc, target, "packageProductDependencies", dep.String()); err != nil {
			return doc, Failed, err
		}
		if target, err = reloadEntry(doc, target); err != nil {
			return doc, Failed, err
		}
		if _, ok, err := targetPhase(doc, target, SectionFrameworksBuildPhase); err != nil {
			return doc, Failed, err
		} else if !ok {
			logger.Warn("target has no Frameworks build phase", zap.String("target", target.Comment))
			return doc, Applied, nil
		}
		if doc, err = addEntry(doc, SectionBuildFile, RenderEntry(build.Value, build.Comment, pbxBuildFileObj("productRef", dep)), buildFileAnchors...); err != nil {
			return doc, Failed, err
		}
		if doc, err = appendToTargetPhase(doc, target.ID, SectionFrameworksBuildPhase, build); err != nil {
			return doc, Failed, err
		}
		logger.Info("swift package added", zap.String("reference", refID), zap.String("target", target.Comment))
		return doc, Applied, nil
	})
}

// AddFolderGroup adds a PBXGroup for a directory and lists it in the group
// of the parent directory, or in the main group.
func (p *PbxProject) AddFolderGroup(name, relativePath string) (Outcome, error) {
	if name == "" {
		return Failed, errors.New("folder group: name is required")
	}
	logger := p.logger.With(zap.String("group", name))
	return p.run("add folder group "+name, func(doc Document) (Document, Outcome, error) {
		fp := Fingerprint{Primary: "/* " + name + " */ = {", Secondary: "path = " + quote(name) + ";"}
		if Exists(doc, fp) {
			logger.Info("group already present")
			return doc, Skipped, nil
		}

		groupID, err := NewIDGenerator(doc).Next()
		if err != nil {
			return doc, Failed, err
		}
		if doc, err = addEntry(doc, SectionGroup, RenderEntry(groupID, name, pbxGroupObj(name)), groupAnchors...); err != nil {
			return doc, Failed, err
		}

		parent, err := parentGroup(doc, relativePath, groupID)
		if err != nil {
			return doc, Failed, err
		}
		if doc, err = AppendListItem(doc, parent, "children", CommentValue{groupID, name}.String()); err != nil {
			return doc, Failed, err
		}
		logger.Info("group added", zap.String("id", groupID), zap.String("parent", parent.ID))
		return doc, Applied, nil
	})
}

// AddFile adds a file reference, lists it in a group and, when the file
// type belongs to a build phase of the target, adds a build file for it.
func (p *PbxProject) AddFile(filePath string, fileOptions FileOptions) (Outcome, error) {
	if filePath == "" {
		return Failed, errors.New("add file: path is required")
	}
	logger := p.logger.With(zap.String("file", filePath))
	return p.run("add file "+filePath, func(doc Document) (Document, Outcome, error) {
		file := newPbxFile(filePath, fileOptions)

		group, err := fileGroup(doc, fileOptions.Group)
		if err != nil {
			return doc, Failed, err
		}
		if groupPath, ok, err := group.Attribute(doc, "path"); err != nil {
			return doc, Failed, err
		} else if ok && strings.HasPrefix(file.Path, groupPath+"/") {
			file.Path = strings.TrimPrefix(file.Path, groupPath+"/")
		}

		fp := Fingerprint{Primary: "/* " + file.Basename + " */ = {isa = PBXFileReference;", Secondary: "path = " + quote(file.Path) + ";"}
		if Exists(doc, fp) {
			logger.Info("file already present")
			return doc, Skipped, nil
		}

		ids, err := nextIDs(NewIDGenerator(doc), 2)
		if err != nil {
			return doc, Failed, err
		}
		file.FileRef, file.Uuid = ids[0], ids[1]

		if doc, err = addEntry(doc, SectionFileReference, RenderEntry(file.FileRef, file.Basename, pbxFileReferenceObj(file)), fileReferenceAnchors...); err != nil {
			return doc, Failed, err
		}
		if group, err = reloadEntry(doc, group); err != nil {
			return doc, Failed, err
		}
		if doc, err = AppendListItem(doc, group, "children", pbxGroupChild(file).String()); err != nil {
			return doc, Failed, err
		}

		phaseIsa := file.BuildPhaseIsa()
		if phaseIsa == "" {
			return doc, Applied, nil
		}
		target, ok, err := nativeTarget(doc, fileOptions.Target)
		if err != nil {
			return doc, Failed, err
		}
		if !ok {
			logger.Warn("project has no native target, file not added to a build phase")
			return doc, Applied, nil
		}
		if _, ok, err := targetPhase(doc, target, phaseIsa); err != nil {
			return doc, Failed, err
		} else if !ok {
			logger.Warn("target has no matching build phase", zap.String("phase", phaseIsa))
			return doc, Applied, nil
		}

		build := CommentValue{file.Uuid, longComment(file)}
		if doc, err = addEntry(doc, SectionBuildFile, RenderEntry(build.Value, build.Comment, pbxBuildFileObj("fileRef", pbxGroupChild(file))), buildFileAnchors...); err != nil {
			return doc, Failed, err
		}
		if doc, err = appendToTargetPhase(doc, target.ID, phaseIsa, build); err != nil {
			return doc, Failed, err
		}
		logger.Info("file added", zap.String("fileRef", file.FileRef), zap.String("phase", phaseIsa))
		return doc, Applied, nil
	})
}

// AddShellScriptBuildPhase appends a Run Script phase to a target.
func (p *PbxProject) AddShellScriptBuildPhase(script ShellScript) (Outcome, error) {
	if script.Name == "" {
		return Failed, errors.New("shell script build phase: name is required")
	}
	logger := p.logger.With(zap.String("phase", script.Name))
	return p.run("add shell script build phase "+script.Name, func(doc Document) (Document, Outcome, error) {
		fp := Fingerprint{Primary: "isa = " + SectionShellScriptBuildPhase + ";", Secondary: "name = " + quote(script.Name) + ";"}
		if Exists(doc, fp) {
			logger.Info("build phase already present")
			return doc, Skipped, nil
		}
		target, ok, err := nativeTarget(doc, script.Target)
		if err != nil {
			return doc, Failed, err
		}
		if !ok {
			return doc, Failed, structuralf("add shell script build phase", SectionNativeTarget, "project has no native target")
		}

		phaseID, err := NewIDGenerator(doc).Next()
		if err != nil {
			return doc, Failed, err
		}
		if doc, err = addEntry(doc, SectionShellScriptBuildPhase, RenderEntry(phaseID, script.Name, pbxShellScriptBuildPhaseObj(script)), shellScriptAnchors...); err != nil {
			return doc, Failed, err
		}
		if target, err = reloadEntry(doc, target); err != nil {
			return doc, Failed, err
		}
		if doc, err = AppendListItem(doc, target, "buildPhases", CommentValue{phaseID, script.Name}.String()); err != nil {
			return doc, Failed, err
		}
		logger.Info("build phase added", zap.String("id", phaseID), zap.String("target", target.Comment))
		return doc, Applied, nil
	})
}

func nextIDs(gen *IDGenerator, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := gen.Next()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func addEntry(doc Document, section, text string, anchors ...Anchor) (Document, error) {
	target, err := Locate(doc, section, anchors...)
	if err != nil {
		return doc, err
	}
	return InsertEntry(doc, target, text)
}

// reloadEntry finds e again after the document has been spliced.
func reloadEntry(doc Document, e EntrySpan) (EntrySpan, error) {
	fresh, ok, err := FindEntry(doc, e.Section, e.ID)
	if err != nil {
		return EntrySpan{}, err
	}
	if !ok {
		return EntrySpan{}, structuralf("reload", e.Section, "entry %s disappeared", e.ID)
	}
	return fresh, nil
}

// projectEntry returns the PBXProject entry named by rootObject.
func projectEntry(doc Document) (EntrySpan, error) {
	root, ok, err := rootAttribute(doc, "rootObject")
	if err != nil {
		return EntrySpan{}, &StructuralError{Op: "project", Section: SectionProject, Reason: err.Error()}
	}
	if ok {
		if e, found, err := FindEntry(doc, SectionProject, root); err != nil || found {
			return e, err
		}
	}
	entries, err := Entries(doc, SectionProject)
	if err != nil {
		return EntrySpan{}, err
	}
	if len(entries) == 0 {
		return EntrySpan{}, structuralf("project", SectionProject, "no project entry")
	}
	return entries[0], nil
}

// nativeTarget finds a target by name. An empty name picks the first
// target; a name that matches nothing is an error.
func nativeTarget(doc Document, name string) (EntrySpan, bool, error) {
	entries, err := Entries(doc, SectionNativeTarget)
	if err != nil {
		return EntrySpan{}, false, err
	}
	if len(entries) == 0 {
		return EntrySpan{}, false, nil
	}
	if name == "" {
		return entries[0], true, nil
	}
	for _, e := range entries {
		targetName, _, err := e.Attribute(doc, "name")
		if err != nil {
			return EntrySpan{}, false, err
		}
		if targetName == name || e.Comment == name {
			return e, true, nil
		}
	}
	return EntrySpan{}, false, structuralf("target", SectionNativeTarget, "no target named %q", name)
}

var errNoPhase = errors.New("build phase not found")

// targetPhase returns the build phase of the given isa listed in the
// target's buildPhases.
func targetPhase(doc Document, target EntrySpan, isa string) (EntrySpan, bool, error) {
	phases, err := target.ListValues(doc, "buildPhases")
	if err != nil {
		return EntrySpan{}, false, err
	}
	for _, id := range phases {
		phase, ok, err := FindEntry(doc, isa, id)
		if err != nil {
			return EntrySpan{}, false, err
		}
		if ok {
			return phase, true, nil
		}
	}
	return EntrySpan{}, false, nil
}

func appendToTargetPhase(doc Document, targetID, isa string, item CommentValue) (Document, error) {
	target, ok, err := FindEntry(doc, SectionNativeTarget, targetID)
	if err != nil {
		return doc, err
	}
	if !ok {
		return doc, structuralf("phase", SectionNativeTarget, "target %s not found", targetID)
	}
	phase, ok, err := targetPhase(doc, target, isa)
	if err != nil {
		return doc, err
	}
	if !ok {
		return doc, fmt.Errorf("%s for target %s: %w", isa, targetID, errNoPhase)
	}
	return AppendListItem(doc, phase, "files", item.String())
}

// groupByName matches a PBXGroup by its path, its name or its comment.
func groupByName(doc Document, name, excludeID string) (EntrySpan, bool, error) {
	return findEntryWhere(doc, SectionGroup, func(e EntrySpan) (bool, error) {
		if e.ID == excludeID {
			return false, nil
		}
		if e.Comment == name {
			return true, nil
		}
		for _, key := range []string{"path", "name"} {
			v, ok, err := e.Attribute(doc, key)
			if err != nil {
				return false, err
			}
			if ok && v == name {
				return true, nil
			}
		}
		return false, nil
	})
}

func mainGroup(doc Document) (EntrySpan, error) {
	project, err := projectEntry(doc)
	if err != nil {
		return EntrySpan{}, err
	}
	id, ok, err := project.Attribute(doc, "mainGroup")
	if err != nil {
		return EntrySpan{}, err
	}
	if !ok {
		return EntrySpan{}, structuralf("main group", SectionProject, "project has no mainGroup")
	}
	group, ok, err := FindEntry(doc, SectionGroup, id)
	if err != nil {
		return EntrySpan{}, err
	}
	if !ok {
		return EntrySpan{}, structuralf("main group", SectionGroup, "main group %s not found", id)
	}
	return group, nil
}

// parentGroup picks the group a new folder group is listed in: the group of
// the parent directory when there is one, the main group otherwise.
func parentGroup(doc Document, relativePath, excludeID string) (EntrySpan, error) {
	dir := path.Dir(strings.ReplaceAll(relativePath, "\\", "/"))
	if dir != "." && dir != "/" && dir != "" {
		group, ok, err := groupByName(doc, path.Base(dir), excludeID)
		if err != nil {
			return EntrySpan{}, err
		}
		if ok {
			return group, nil
		}
	}
	return mainGroup(doc)
}

func fileGroup(doc Document, name string) (EntrySpan, error) {
	if name == "" {
		return mainGroup(doc)
	}
	group, ok, err := groupByName(doc, name, "")
	if err != nil {
		return EntrySpan{}, err
	}
	if !ok {
		return EntrySpan{}, structuralf("add file", SectionGroup, "no group named %q", name)
	}
	return group, nil
}

// helper object creation functions
func pbxBuildFileObj(refKey string, ref CommentValue) pbxobject.Object {
	obj := pbxobject.NewObject()
	obj.Set("isa", SectionBuildFile)
	obj.Set(refKey, ref)
	return obj
}

func pbxFileReferenceObj(pbxfile *PbxFile) pbxobject.Object {
	obj := pbxobject.NewObject()
	obj.Set("isa", SectionFileReference)
	if pbxfile.FileEncoding > 0 {
		obj.Set("fileEncoding", pbxfile.FileEncoding)
	}
	obj.Set("lastKnownFileType", pbxfile.LastKnownFileType)
	if pbxfile.Path != pbxfile.Basename {
		obj.Set("name", pbxfile.Basename)
	}
	obj.Set("path", pbxfile.Path)
	obj.Set("sourceTree", pbxfile.SourceTree)
	return obj
}

func pbxGroupObj(name string) pbxobject.Object {
	return pbxobject.NewObjectWithData([]pbxobject.ObjectItem{
		pbxobject.NewObjectItem("isa", SectionGroup),
		pbxobject.NewObjectItem("children", []CommentValue{}),
		pbxobject.NewObjectItem("path", name),
		pbxobject.NewObjectItem("sourceTree", DEFAULT_SOURCETREE),
	})
}

func pbxGroupChild(pbxfile *PbxFile) CommentValue {
	return CommentValue{
		Value:   pbxfile.FileRef,
		Comment: pbxfile.Basename,
	}
}

func pbxShellScriptBuildPhaseObj(script ShellScript) pbxobject.Object {
	shellPath := script.ShellPath
	if shellPath == "" {
		shellPath = defaultShellPath
	}
	inputPaths := script.InputPaths
	if inputPaths == nil {
		inputPaths = []string{}
	}
	outputPaths := script.OutputPaths
	if outputPaths == nil {
		outputPaths = []string{}
	}
	return pbxobject.NewObjectWithData([]pbxobject.ObjectItem{
		pbxobject.NewObjectItem("isa", SectionShellScriptBuildPhase),
		pbxobject.NewObjectItem("buildActionMask", defaultBuildActionMask),
		pbxobject.NewObjectItem("files", []CommentValue{}),
		pbxobject.NewObjectItem("inputPaths", inputPaths),
		pbxobject.NewObjectItem("name", script.Name),
		pbxobject.NewObjectItem("outputPaths", outputPaths),
		pbxobject.NewObjectItem("runOnlyForDeploymentPostprocessing", 0),
		pbxobject.NewObjectItem("shellPath", shellPath),
		pbxobject.NewObjectItem("shellScript", script.Script),
	})
}

func longComment(pbxfile *PbxFile) string {
	return fmt.Sprintf("%s in %s", pbxfile.Basename, pbxfile.Group)
}
