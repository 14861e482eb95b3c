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
	"path"
	"strings"
)

const (
	DEFAULT_SOURCETREE   = "<group>"
	DEFAULT_GROUP        = "Resources"
	DEFAULT_FILETYPE     = "unknown"
	DEFAULT_FILEENCODING = 4
)

var FILETYPE_BY_EXTENSION = map[string]string{
	"a":           "archive.ar",
	"app":         "wrapper.application",
	"appex":       "wrapper.app-extension",
	"bundle":      "wrapper.plug-in",
	"dylib":       "compiled.mach-o.dylib",
	"framework":   "wrapper.framework",
	"h":           "sourcecode.c.h",
	"json":        "text.json",
	"m":           "sourcecode.c.objc",
	"markdown":    "text",
	"mdimporter":  "wrapper.cfbundle",
	"octest":      "wrapper.cfbundle",
	"pch":         "sourcecode.c.h",
	"plist":       "text.plist.xml",
	"sh":          "text.script.sh",
	"swift":       "sourcecode.swift",
	"tbd":         "sourcecode.text-based-dylib-definition",
	"xcassets":    "folder.assetcatalog",
	"xcconfig":    "text.xcconfig",
	"xcdatamodel": "wrapper.xcdatamodel",
	"xcodeproj":   "wrapper.pb-project",
	"xctest":      "wrapper.cfbundle",
	"xib":         "file.xib",
	"storyboard":  "file.storyboard",
	"strings":     "text.plist.strings",
}

var GROUP_BY_FILETYPE = map[string]string{
	"archive.ar":                             "Frameworks",
	"compiled.mach-o.dylib":                  "Frameworks",
	"sourcecode.text-based-dylib-definition": "Frameworks",
	"wrapper.framework":                      "Frameworks",
	"embedded.framework":                     "Embed Frameworks",
	"sourcecode.c.h":                         "Resources",
	"sourcecode.c.objc":                      "Sources",
	"sourcecode.swift":                       "Sources",
}

var PATH_BY_FILETYPE = map[string]string{
	"compiled.mach-o.dylib":                  "usr/lib/",
	"sourcecode.text-based-dylib-definition": "usr/lib/",
	"wrapper.framework":                      "System/Library/Frameworks/",
}

var SOURCETREE_BY_FILETYPE = map[string]string{
	"compiled.mach-o.dylib":                  "SDKROOT",
	"sourcecode.text-based-dylib-definition": "SDKROOT",
	"wrapper.framework":                      "SDKROOT",
}

var ENCODING_BY_FILETYPE = map[string]int{
	"sourcecode.c.h":     DEFAULT_FILEENCODING,
	"sourcecode.c.objc":  DEFAULT_FILEENCODING,
	"sourcecode.swift":   DEFAULT_FILEENCODING,
	"text":               DEFAULT_FILEENCODING,
	"text.json":          DEFAULT_FILEENCODING,
	"text.plist.xml":     DEFAULT_FILEENCODING,
	"text.script.sh":     DEFAULT_FILEENCODING,
	"text.xcconfig":      DEFAULT_FILEENCODING,
	"text.plist.strings": DEFAULT_FILEENCODING,
}

// BUILDPHASE_BY_GROUP maps a file's group to the build phase that takes it.
var BUILDPHASE_BY_GROUP = map[string]string{
	"Sources":    "PBXSourcesBuildPhase",
	"Resources":  "PBXResourcesBuildPhase",
	"Frameworks": "PBXFrameworksBuildPhase",
}

// FileOptions tune how AddFile registers a file.
type FileOptions struct {
	LastKnownFileType string
	SourceTree        string
	// Group is the PBXGroup (by name or path) the reference is listed in.
	Group string
	// Target is the native target whose build phase gets the file. Empty
	// means the first target.
	Target string
}

// PbxFile describes a file reference before it is written.
type PbxFile struct {
	Basename          string
	Path              string
	LastKnownFileType string
	// Group is the build phase group: Sources, Resources or Frameworks.
	Group        string
	FileEncoding int
	SourceTree   string
	FileRef      string
	Uuid         string
}

func newPbxFile(filePath string, options FileOptions) *PbxFile {
	filePath = strings.ReplaceAll(filePath, "\\", "/")
	pbxfile := PbxFile{
		Basename: path.Base(filePath),
	}
	if options.LastKnownFileType != "" {
		pbxfile.LastKnownFileType = options.LastKnownFileType
	} else {
		pbxfile.LastKnownFileType = detectType(filePath)
	}
	pbxfile.FileEncoding = ENCODING_BY_FILETYPE[pbxfile.LastKnownFileType]
	pbxfile.Group = pbxfile.detectGroup()
	pbxfile.Path = pbxfile.defaultPath(filePath)

	if options.SourceTree != "" {
		pbxfile.SourceTree = options.SourceTree
	} else {
		pbxfile.SourceTree = pbxfile.detectSourcetree()
	}
	return &pbxfile
}

func detectType(filePath string) string {
	extension := strings.TrimPrefix(path.Ext(filePath), ".")
	if extension == "" {
		return DEFAULT_FILETYPE
	}
	filetype, found := FILETYPE_BY_EXTENSION[strings.ToLower(extension)]
	if !found {
		return DEFAULT_FILETYPE
	}
	return filetype
}

func (pbxfile *PbxFile) detectGroup() string {
	if path.Ext(pbxfile.Basename) == ".xcdatamodeld" {
		return "Sources"
	}
	groupName, ok := GROUP_BY_FILETYPE[pbxfile.LastKnownFileType]
	if !ok {
		groupName = DEFAULT_GROUP
	}
	return groupName
}

func (pbxfile *PbxFile) detectSourcetree() string {
	sourcetree, ok := SOURCETREE_BY_FILETYPE[pbxfile.LastKnownFileType]
	if !ok {
		sourcetree = DEFAULT_SOURCETREE
	}
	return sourcetree
}

func (pbxfile *PbxFile) defaultPath(filePath string) string {
	defaultPath, ok := PATH_BY_FILETYPE[pbxfile.LastKnownFileType]
	if !ok {
		return filePath
	}
	return path.Join(defaultPath, path.Base(filePath))
}

// BuildPhaseIsa is the isa of the build phase this file belongs to, or ""
// when no phase takes it.
func (pbxfile *PbxFile) BuildPhaseIsa() string {
	return BUILDPHASE_BY_GROUP[pbxfile.Group]
}
