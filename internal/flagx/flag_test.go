package flagx

import (
	"os"
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":50051", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":50051"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-d=dsn"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-a", "addr"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "addr"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"prog", "-c", "conf.json", "-a", "addr"}
	if got := JsonConfigFlags(); got != "conf.json" {
		t.Fatalf("got %q, want conf.json", got)
	}

	os.Args = []string{"prog", "-a", "addr"}
	if got := JsonConfigFlags(); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}
