package riddim

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	type test struct {
		input string
		want  Command
	}
	tests := []test{
		{
			input: "pat kick '1",
			want: Command{
				Name: Identifier("pat"),
				Args: []Node{
					Identifier("kick"),
					MatchExpr{
						matchers: []matchItem{
							{level: 0, matcher: listMatch{1}},
						},
					},
				},
			},
		},
		{
			input: "pat snare '*/*",
			want: Command{
				Name: Identifier("pat"),
				Args: []Node{
					Identifier("snare"),
					MatchExpr{
						matchers: []matchItem{
							{level: 0, matcher: matchAll},
							{level: 1, matcher: matchAll},
						},
					},
				},
			},
		},
		{
			input: "pat clave '*//3,4",
			want: Command{
				Name: Identifier("pat"),
				Args: []Node{
					Identifier("clave"),
					MatchExpr{
						matchers: []matchItem{
							{level: 0, matcher: matchAll},
							{level: 2, matcher: listMatch{3, 4}},
						},
					},
				},
			},
		},
		{
			input: "pat hh '1,2//3:4",
			want: Command{
				Name: Identifier("pat"),
				Args: []Node{
					Identifier("hh"),
					MatchExpr{
						matchers: []matchItem{
							{level: 0, matcher: listMatch{1, 2}},
							{level: 2, matcher: rangeMatch{start: 3, end: 4}},
						},
					},
				},
			},
		},
		{
			// a match expression does not swallow trailing arguments
			input: "pat kick '1:4 0.8",
			want: Command{
				Name: Identifier("pat"),
				Args: []Node{
					Identifier("kick"),
					MatchExpr{
						matchers: []matchItem{
							{level: 0, matcher: rangeMatch{start: 1, end: 4}},
						},
					},
					Float(0.8),
				},
			},
		},
		{
			input: "set kit level.kick -6",
			want: Command{
				Name: Identifier("set"),
				Args: []Node{
					Identifier("kit"),
					Identifier("level.kick"),
					Int(-6),
				},
			},
		},
		{
			input: `bounce "a/file.wav" 4`,
			want: Command{
				Name: Identifier("bounce"),
				Args: []Node{String("a/file.wav"), Int(4)},
			},
		},
		{
			input: `bounce ""`,
			want: Command{
				Name: Identifier("bounce"),
				Args: []Node{String("")},
			},
		},
	}
	for _, test := range tests {
		t.Log(test.input)
		got, err := Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("\nwant: %+v\ngot:  %+v", test.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1 kick",
		"pat kick '",
		"pat kick '1:",
		"pat kick ':4",
	} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected error for input: %q", input)
		}
	}
}
