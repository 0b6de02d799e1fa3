package lib

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
	Lexer for KiCad module reports (.rpt):

		$MODULE "C1"
		reference "C1"
		value "100n"
		footprint "SMD_Packages:SMD-0805"
		position 140.970000 -93.980000 orientation 90.00
		$PAD "1"
		position -0.950000 0.000000
		$EndPAD
		$EndMODULE  C1
*/
var rptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Section", Pattern: `\$[A-Za-z]+`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Word", Pattern: `[^\s"]+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type rptFile struct {
	Lines []*rptLine `parser:"( @@ | EOL )*"`
}

type rptLine struct {
	Pos     lexer.Position
	Keyword string      `parser:"@( Section | Word | Number )"`
	Values  []*rptValue `parser:"@@* EOL?"`
}

type rptValue struct {
	Str  *string  `parser:"  @String"`
	Num  *float64 `parser:"| @Number"`
	Word *string  `parser:"| @( Word | Section )"`
}

func (v *rptValue) text() string {
	switch {
	case v.Str != nil:
		return *v.Str
	case v.Word != nil:
		return *v.Word
	case v.Num != nil:
		return fmt.Sprintf("%g", *v.Num)
	}
	return ""
}

var rptParser = participle.MustBuild[rptFile](
	participle.Lexer(rptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

/*
	Read the parts of a KiCad module report.
*/
func ReadRptFile(src string) ([]*Part, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ParseRpt(src, fp)
}

func ParseRpt(name string, r io.Reader) ([]*Part, error) {
	file, err := rptParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	parts := []*Part{}
	var current *Part
	inPad := false
	for _, line := range file.Lines {
		switch line.Keyword {
		case "$MODULE":
			current = &Part{}
			if len(line.Values) > 0 {
				current.ComponentName = line.Values[0].text()
			}
		case "$PAD":
			inPad = true
		case "$EndPAD":
			inPad = false
		case "$EndMODULE":
			if current != nil {
				parts = append(parts, current)
			}
			current = nil
			inPad = false
		}

		if current == nil || inPad || len(line.Values) == 0 {
			continue
		}

		switch line.Keyword {
		case "reference":
			current.ComponentName = line.Values[0].text()
		case "value":
			current.Value = line.Values[0].text()
		case "footprint":
			current.Footprint = line.Values[0].text()
		case "position":
			// position <x> <y> orientation <deg>
			if len(line.Values) < 2 || line.Values[0].Num == nil || line.Values[1].Num == nil {
				return nil, &Error{Kind: KindMalformedLine, Line: line.Pos.Line, Context: "position needs x and y"}
			}
			current.Pos = Pos(*line.Values[0].Num, *line.Values[1].Num)
			if len(line.Values) >= 4 && line.Values[2].text() == "orientation" && line.Values[3].Num != nil {
				current.Angle = *line.Values[3].Num
			}
		}
	}

	return parts, nil
}
