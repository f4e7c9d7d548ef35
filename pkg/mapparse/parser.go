package mapparse

import (
	"bufio"
	"io"
	"strings"
)

// Edge is an undirected pair of room names.
type Edge [2]string

// Parse reads the Mermaid-like room graph text format from r and returns
// the rooms in first-seen order and the edges in line order.
func Parse(r io.Reader) ([]string, []Edge, error) {
	rooms := []string{}
	seen := map[string]bool{}
	edges := []Edge{}

	addRoom := func(name string) {
		if !seen[name] {
			seen[name] = true
			rooms = append(rooms, name)
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "graph") {
			continue
		}

		idx := strings.Index(line, "---")
		if idx < 0 {
			continue
		}
		left := tokenize(line[:idx])
		right := tokenize(line[idx+len("---"):])
		if len(left) == 0 || len(right) == 0 {
			continue
		}

		a := left[len(left)-1]
		b := right[0]
		addRoom(a)
		addRoom(b)
		edges = append(edges, Edge{a, b})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return rooms, edges, nil
}

// tokenize splits s into whitespace-delimited words, treating a
// "double-quoted span" (which may itself contain whitespace) as one token.
func tokenize(s string) []string {
	var tokens []string
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		for i < len(runes) && isSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		if runes[i] == '"' {
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			tokens = append(tokens, string(runes[i+1:j]))
			if j < len(runes) {
				j++ // skip closing quote
			}
			i = j
			continue
		}
		j := i
		for j < len(runes) && !isSpace(runes[j]) {
			j++
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return tokens
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
