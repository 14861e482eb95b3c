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
	"fmt"
	"strings"

	"github.com/soapywu/pbxpatch/pbxobject"
)

const (
	INDENT = "\t"
	// entries live two levels deep: inside the root object and inside objects
	ENTRY_INDENT_LEVEL = 2
)

type PbxWriterOption func(w *PbxWriter)

func WithOmitEmpty() PbxWriterOption {
	return func(w *PbxWriter) {
		w.omitEmptyValues = true
	}
}

// PbxWriter renders new entries in the layout Xcode writes them in, so a
// patched file looks like one Xcode saved itself.
type PbxWriter struct {
	stringWriter    *strings.Builder
	omitEmptyValues bool
	indentLevel     int
}

func NewPbxWriter(options ...PbxWriterOption) *PbxWriter {
	w := &PbxWriter{
		stringWriter: &strings.Builder{},
		indentLevel:  ENTRY_INDENT_LEVEL,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

// RenderEntry renders `ID /* comment */ = {...};` without a trailing newline.
func RenderEntry(id, comment string, obj pbxobject.Object) string {
	w := NewPbxWriter(WithOmitEmpty())
	w.WriteEntry(id, comment, obj)
	return strings.TrimRight(w.String(), "\n")
}

func indent(x int) string {
	if x <= 0 {
		return ""
	}
	return strings.Repeat(INDENT, x)
}

func getComment(key string, parent pbxobject.Object) string {
	return parent.GetString(toCommentKey(key))
}

func (w *PbxWriter) String() string {
	return w.stringWriter.String()
}

func (w *PbxWriter) write(format string, args ...interface{}) {
	_, _ = w.stringWriter.WriteString(indent(w.indentLevel) + fmt.Sprintf(format, args...))
}

// WriteEntry writes one record. PBXBuildFile and PBXFileReference records
// go on a single line, everything else one attribute per line.
func (w *PbxWriter) WriteEntry(id, comment string, obj pbxobject.Object) {
	isa := obj.GetString("isa")
	if isa == "PBXBuildFile" || isa == "PBXFileReference" {
		w.writeInlineObject(id, comment, obj)
		return
	}
	if comment != "" {
		w.write("%s /* %s */ = {\n", id, comment)
	} else {
		w.write("%s = {\n", id)
	}
	w.indentLevel++
	w.writeObject(obj)
	w.indentLevel--
	w.write("};\n")
}

func (w *PbxWriter) writeObject(obj pbxobject.Object) {
	obj.ForeachWithFilter(func(key string, val interface{}) pbxobject.IterateActionType {
		cmt := getComment(key, obj)
		switch {
		case isArray(val):
			w.writeArray(toArray(val), key)
		case isObject(val):
			w.write("%s = {\n", quote(key))
			w.indentLevel++
			w.writeObject(toObject(val))
			w.indentLevel--
			w.write("};\n")
		case isString(val):
			str := toString(val)
			if w.omitEmptyValues && str == "" {
				return pbxobject.IterateActionContinue
			}
			w.write("%s = %s;\n", quote(key), withComment(quote(str), cmt))
		case isInt(val):
			w.write("%s = %s;\n", quote(key), withComment(toIntString(val), cmt))
		case isCommentValue(val):
			w.write("%s = %s;\n", quote(key), val.(CommentValue).String())
		}
		return pbxobject.IterateActionContinue
	}, nonCommentsFilter)
}

func (w *PbxWriter) writeArray(arr []interface{}, name string) {
	w.write("%s = (\n", quote(name))
	w.indentLevel++
	for _, obj := range arr {
		switch {
		case isCommentValue(obj):
			w.write("%s,\n", obj.(CommentValue).String())
		case isObject(obj):
			w.write("{\n")
			w.indentLevel++
			w.writeObject(toObject(obj))
			w.indentLevel--
			w.write("},\n")
		case isString(obj):
			w.write("%s,\n", quote(toString(obj)))
		case isInt(obj):
			w.write("%s,\n", toIntString(obj))
		}
	}
	w.indentLevel--
	w.write(");\n")
}

func (w *PbxWriter) writeInlineObjectHelp(buffer *[]string, name string, desc string, ref pbxobject.Object) {
	output := *buffer
	output = append(output, withComment(name, desc)+" = {")

	ref.ForeachWithFilter(func(key string, val interface{}) pbxobject.IterateActionType {
		cmt := getComment(key, ref)
		switch {
		case isArray(val):
			items := make([]string, 0)
			for _, item := range toArray(val) {
				switch {
				case isCommentValue(item):
					items = append(items, item.(CommentValue).String())
				case isString(item):
					items = append(items, quote(toString(item)))
				}
			}
			list := ""
			if len(items) > 0 {
				list = strings.Join(items, ", ") + ", "
			}
			output = append(output, fmt.Sprintf("%s = (%s); ", quote(key), list))
		case isObject(val):
			w.writeInlineObjectHelp(&output, quote(key), cmt, toObject(val))
			output = append(output, " ")
		case isString(val):
			value := toString(val)
			if value == "" && w.omitEmptyValues {
				return pbxobject.IterateActionContinue
			}
			output = append(output, fmt.Sprintf("%s = %s; ", quote(key), withComment(quote(value), cmt)))
		case isInt(val):
			output = append(output, fmt.Sprintf("%s = %s; ", quote(key), withComment(toIntString(val), cmt)))
		case isCommentValue(val):
			output = append(output, fmt.Sprintf("%s = %s; ", quote(key), val.(CommentValue).String()))
		}
		return pbxobject.IterateActionContinue
	}, nonCommentsFilter)

	output = append(output, "};")
	*buffer = output
}

func (w *PbxWriter) writeInlineObject(name string, desc string, ref pbxobject.Object) {
	output := []string{}
	w.writeInlineObjectHelp(&output, name, desc, ref)
	w.write("%s\n", strings.TrimSpace(strings.Join(output, "")))
}

func withComment(value, comment string) string {
	if comment == "" {
		return value
	}
	return value + " /* " + comment + " */"
}

func isUnquotedChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return c == '_' || c == '$' || c == '/' || c == '.'
}

// quote returns s as Xcode writes it: bare when every byte is safe and
// nothing in it would open a comment, otherwise double quoted with escapes.
func quote(s string) string {
	if s == "" {
		return `""`
	}
	safe := !strings.Contains(s, "//") && !strings.Contains(s, "/*")
	for i := 0; safe && i < len(s); i++ {
		if !isUnquotedChar(s[i]) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
