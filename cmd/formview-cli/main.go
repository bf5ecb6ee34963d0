package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/htmlattr"
	"github.com/goliatone/go-formview/pkg/message"
	"github.com/goliatone/go-formview/pkg/render"
)

func main() {
	input := flag.String("input", "", "YAML file with the element's error messages")
	name := flag.String("element", "form", "element name")
	class := flag.String("class", "", "class attribute for the error list")
	openFormat := flag.String("open", render.DefaultMessageOpenFormat, "opening markup format; %s receives the attributes fragment")
	closeString := flag.String("close", render.DefaultMessageCloseString, "closing markup")
	separator := flag.String("separator", render.DefaultMessageSeparatorString, "markup between messages")
	output := flag.String("output", "", "output file (stdout if empty)")
	force := flag.Bool("force", false, "overwrite the output file without asking")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input messages file")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read messages: %v", err)
	}

	var tree message.Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		log.Fatalf("parse messages: %v", err)
	}

	helper := render.NewFormErrors(
		render.WithMessageOpenFormat(*openFormat),
		render.WithMessageCloseString(*closeString),
		render.WithMessageSeparator(*separator),
	)

	var attrs htmlattr.Attrs
	if *class != "" {
		attrs = htmlattr.Attrs{"class": *class}
	}

	markup, err := helper.Render(element.New(*name).SetMessages(tree), attrs)
	if err != nil {
		log.Fatalf("render errors: %v", err)
	}

	if *output == "" {
		fmt.Println(markup)
		return
	}

	if !*force && fileExists(*output) {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s exists, overwrite?", *output),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			log.Fatalf("confirm overwrite: %v", err)
		}
		if !overwrite {
			return
		}
	}

	if err := os.WriteFile(*output, []byte(markup+"\n"), 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("Errors written to %s\n", *output)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
