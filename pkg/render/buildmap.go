// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expgen/expgen/pkg/experiments"
)

// renderBuildMap emits the build-tag mapping artifact: policy category to
// test tag to sorted experiment names. Categories and tags are emitted in
// sorted order so the output is diffable.
func renderBuildMap(resolved []experiments.Resolved) []byte {
	categories := map[string]map[string][]string{
		"dbg": {},
		"off": {},
		"on":  {},
	}
	for _, exp := range resolved {
		category, ok := exp.Policy.BuildCategory()
		if !ok {
			continue
		}
		for _, tag := range exp.TestTags {
			categories[category][tag] = append(categories[category][tag], exp.Name)
		}
	}

	var b strings.Builder
	b.WriteString("# SPDX-License-Identifier: Apache-2.0\n")
	b.WriteString("# Copyright Authors of expgen\n#\n")
	b.WriteString("# Code generated by expgen. DO NOT EDIT.\n\n")
	b.WriteString("\"\"\"Dictionary of tags to experiments so we know when to test different experiments.\"\"\"\n")

	b.WriteString("\nEXPERIMENTS = {\n")
	for _, category := range sortedKeys(categories) {
		fmt.Fprintf(&b, "    %q: {\n", category)
		tags := categories[category]
		for _, tag := range sortedKeys(tags) {
			fmt.Fprintf(&b, "        %q: [\n", tag)
			names := append([]string(nil), tags[tag]...)
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&b, "            %q,\n", name)
			}
			b.WriteString("        ],\n")
		}
		b.WriteString("    },\n")
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
