package moderation

import (
	"bufio"
	"bytes"
	"collab-hub/errors"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// Dictionaries maps an ISO 639-1 language code to its forbidden words.
type Dictionaries map[string][]string

// Languages returns the loaded language codes, sorted.
func (d Dictionaries) Languages() []string {
	languages := make([]string, 0, len(d))
	for lang := range d {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

// All merges every dictionary without duplicates.
func (d Dictionaries) All() []string {
	seen := make(map[string]struct{})
	var words []string
	for _, lang := range d.Languages() {
		for _, w := range d[lang] {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}

// LoadEmbedded reads the dictionaries shipped with the binary.
func LoadEmbedded() (Dictionaries, error) {
	return LoadDictionaries(censoredFolder, "censored")
}

// LoadDictionaries reads every "<lang>.txt" file of dir, one word per line.
func LoadDictionaries(fsys fs.FS, dir string) (Dictionaries, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	dictionaries := make(Dictionaries)
	total := 0
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		lang := strings.TrimSuffix(entry.Name(), ".txt")
		// Scanner handles both \n and \r\n.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if word := strings.TrimSpace(scanner.Text()); word != "" {
				dictionaries[lang] = append(dictionaries[lang], word)
				total++
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if total == 0 {
		return nil, errors.ErrEmptyWords
	}
	return dictionaries, nil
}
