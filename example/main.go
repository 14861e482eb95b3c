package main

import (
	"log"
	"os"

	"github.com/soapywu/pbxpatch/internal/dlogger"
	"github.com/soapywu/pbxpatch/pbxproj"
)

func main() {
	projectPath := "project.pbxproj"
	if len(os.Args) > 1 {
		projectPath = os.Args[1]
	}
	logger := dlogger.MustGetLogger(dlogger.LogLevelInfo)
	defer func() { _ = logger.Sync() }()

	project, err := pbxproj.Open(projectPath, pbxproj.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	for _, file := range []string{"foo.h", "foo.m", "FooKit.framework"} {
		outcome, err := project.AddFile(file, pbxproj.FileOptions{})
		if err != nil {
			log.Println(err)
			continue
		}
		log.Printf("%s: %s", file, outcome)
	}

	outcome, err := project.AddSwiftPackage(pbxproj.SwiftPackage{
		Name:           "Foo",
		RepositoryURL:  "https://example.com/Foo",
		MinimumVersion: "1.0.0",
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Foo: %s", outcome)
}
