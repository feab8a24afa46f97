// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
)

func FuzzConfigParse(f *testing.F) {
	f.Add(FileName, []byte("data_dir: data\nlisten: :8050\n"))
	f.Add(FileName, []byte(""))
	f.Add(FileName, []byte("---"))
	f.Add(TOMLFileName, []byte("[cache]\nkind = \"redis\"\n"))
	f.Add(TOMLFileName, []byte("{invalid"))

	f.Fuzz(func(t *testing.T, name string, data []byte) {
		cfg, err := parse(name, data)
		if err != nil {
			return
		}
		// A parsed config must validate without panicking.
		_ = Validate(cfg)
	})
}
