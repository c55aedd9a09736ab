// Package env is an implementation of the env.Source interface from
// go-simpler.org, loading variables from a .env style file.
package env

import (
	"os"
	"strings"

	"fastjson.lol/chk"
)

// Env is a key/value map representing environment variables.
type Env map[string]string

// GetEnv reads a file expected to contain KEY=value lines in standard shell
// environment variable format. Blank lines and lines starting with # are
// skipped.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	env = make(Env)
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		env[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return
}

// LookupEnv returns the raw string value associated with a key, implementing
// the custom variable source of go-simpler.org/env.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}
