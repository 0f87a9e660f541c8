// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListZipfianGenerator_DrawsOnlyConfiguredValues(t *testing.T) {
	values := []int64{7, 42, 99, 1000}
	allowed := map[int64]bool{}
	for _, v := range values {
		allowed[v] = true
	}

	g, err := NewListZipfianGenerator(values, DefaultZipfianTheta)
	if err != nil {
		t.Fatalf("NewListZipfianGenerator: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if v := g.Next(); !allowed[v] {
			t.Fatalf("draw %d not among configured values %v", v, values)
		}
	}
}

func TestListZipfianGenerator_RejectsEmptyValues(t *testing.T) {
	if _, err := NewListZipfianGenerator(nil, DefaultZipfianTheta); err == nil {
		t.Fatal("expected an error for an empty value list")
	}
}

func TestHistogramFileGenerator_DrawsOnlyConfiguredBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.txt")
	contents := "0 10\n100 30\n500 5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	g, err := NewHistogramFileGenerator(path)
	if err != nil {
		t.Fatalf("NewHistogramFileGenerator: %v", err)
	}
	allowed := map[int64]bool{0: true, 100: true, 500: true}
	for i := 0; i < 1000; i++ {
		if v := g.Next(); !allowed[v] {
			t.Fatalf("draw %d not among configured buckets", v)
		}
	}
}

func TestHistogramFileGenerator_RejectsMissingFile(t *testing.T) {
	if _, err := NewHistogramFileGenerator(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing histogram file")
	}
}
