package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tzselect/pkg/translations"
	"github.com/goliatone/go-tzselect/pkg/zones"
)

// Writes a catalog for one locale with every zone in table order. Existing
// translations are kept; identity fills the gaps when -identity is set.
func main() {
	var (
		locale     = flag.String("locale", "en", "locale to generate")
		outputPath = flag.String("output", "", "output path (defaults to pkg/translations/locales/<locale>.yml)")
		identity   = flag.Bool("identity", false, "use zone names for missing translations")
	)
	flag.Parse()

	if *outputPath == "" {
		*outputPath = filepath.Join("pkg", "translations", "locales", *locale+".yml")
	}

	table, err := zones.DefaultTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load zone table: %v\n", err)
		os.Exit(1)
	}
	catalog, err := translations.DefaultCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	scope := &yaml.Node{Kind: yaml.MappingNode}
	missing := 0
	for _, name := range table.Names() {
		value, ok := translations.Lookup(catalog, *locale, name)
		if !ok {
			missing++
			if *identity {
				value = name
			}
		}
		scope.Content = append(scope.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value},
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: *locale},
		{Kind: yaml.MappingNode, Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: translations.Scope},
			scope,
		}},
	}}

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output: %v\n", err)
		os.Exit(1)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalog: %v\n", err)
		os.Exit(1)
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush catalog: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Catalog for %s written to %s (%d of %d zones missing)\n", *locale, *outputPath, missing, table.Len())
}
