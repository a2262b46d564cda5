package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const paragraphKeyPrefix = "Paragraph_"

// ParagraphMap is an ordered collection of paragraphs serialized as an
// object keyed Paragraph_1, Paragraph_2, ... in document order. A plain Go
// map cannot carry this shape: encoding/json sorts map keys
// lexicographically, which would emit Paragraph_10 before Paragraph_2.
type ParagraphMap struct {
	paras []string
}

// NewParagraphMap builds a ParagraphMap from paragraphs in document order.
func NewParagraphMap(paras []string) ParagraphMap {
	return ParagraphMap{paras: paras}
}

// Paragraphs returns the paragraphs in document order.
func (m ParagraphMap) Paragraphs() []string {
	return m.paras
}

// Len returns the number of paragraphs.
func (m ParagraphMap) Len() int {
	return len(m.paras)
}

// MarshalJSON emits the keys in numeric order, 1-based.
func (m ParagraphMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, para := range m.paras {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprintf("%s%d", paragraphKeyPrefix, i+1))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(para)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores paragraph order from the numeric key suffixes.
func (m *ParagraphMap) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type entry struct {
		index int
		text  string
	}
	entries := make([]entry, 0, len(raw))
	for key, text := range raw {
		suffix, ok := strings.CutPrefix(key, paragraphKeyPrefix)
		if !ok {
			return fmt.Errorf("unexpected content key %q", key)
		}
		index, err := strconv.Atoi(suffix)
		if err != nil || index < 1 {
			return fmt.Errorf("unexpected content key %q", key)
		}
		entries = append(entries, entry{index: index, text: text})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	paras := make([]string, 0, len(entries))
	for _, e := range entries {
		paras = append(paras, e.text)
	}
	m.paras = paras
	return nil
}
