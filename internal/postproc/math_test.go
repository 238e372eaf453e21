package postproc

import "testing"

func TestMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"display", "$$x=3$$", `\[x=3\]`},
		{"inline", "$x=3$", `\(x=3\)`},
		{"display then inline", "$$a$$ and $b$", `\[a\] and \(b\)`},
		{"inline in text", "so $a+b$ holds", `so \(a+b\) holds`},
		{"ampersand unescaped", `$a \& b$`, `\(a & b\)`},
		{"lt shorthand", `$a \lt b$`, `\(a < b\)`},
		{"cdot shorthand", "$a * b$", `\(a \cdot b\)`},
		{"del shorthand", `$\del f$`, `\(\partial f\)`},
		{"delta untouched", `$\delta$`, `\(\delta\)`},
		{"escaped dollars", `costs \$5 or \$6`, `costs \$5 or \$6`},
		{"shorthands outside math untouched", `a * b \lt c`, `a * b \lt c`},
		{"no math", "plain text", "plain text"},
		{"adjacent inline spans", "Values $a$$b$ here", `Values \(a\)\(b\) here`},
		{"bare double dollar", "Cost $$ and more", "Cost $$ and more"},
		{"escaped then real", `\$x $y$`, `\$x \(y\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Math(tt.input); got != tt.want {
				t.Errorf("Math(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
