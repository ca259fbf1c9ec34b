// seehuhn.de/go/iconenc - encoding vectors for icon fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package names

import "testing"

func TestIsReserved(t *testing.T) {
	cases := []struct {
		in  string
		res bool
	}{
		{".notdef", true},
		{".null", true},
		{"nonmarkingreturn", false},
		{"house", false},
		{"", false},
		{"a.alt", false},
	}
	for _, test := range cases {
		if got := IsReserved(test.in); got != test.res {
			t.Errorf("IsReserved(%q) = %t, want %t", test.in, got, test.res)
		}
	}
}

func TestIsToken(t *testing.T) {
	cases := []struct {
		in  string
		res bool
	}{
		{"house", true},
		{"arrow-right", true},
		{"500px", true},
		{".notdef", true},
		{"uniF015", true},
		{"", false},
		{"two words", false},
		{"a/b", false},
		{"a(b", false},
		{"a[b]", false},
		{"a{b}", false},
		{"a<b>", false},
		{"50%", false},
		{"tab\there", false},
		{"café", false},
	}
	for _, test := range cases {
		if got := IsToken(test.in); got != test.res {
			t.Errorf("IsToken(%q) = %t, want %t", test.in, got, test.res)
		}
	}

	long := make([]byte, maxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if IsToken(string(long)) {
		t.Error("overlong name accepted")
	}
	if !IsToken(string(long[:maxNameLength])) {
		t.Error("name of maximal length rejected")
	}
}
