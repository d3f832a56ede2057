// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"sync"
	"testing"
)

func TestPatternCacheHitReturnsSamePointer(t *testing.T) {
	t.Parallel()
	c := NewPatternCache(4)

	p1, err := c.getOrCompile("*.go", CompileFlags{})
	if err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	p2, err := c.getOrCompile("*.go", CompileFlags{})
	if err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	if p1 != p2 {
		t.Fatalf("expected a cache hit to return the same *Pattern")
	}
	if got := c.len(); got != 1 {
		t.Fatalf("expected cache len 1, got %d", got)
	}
}

func TestPatternCacheEviction(t *testing.T) {
	t.Parallel()
	c := NewPatternCache(2)

	if _, err := c.getOrCompile("a*", CompileFlags{}); err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	if _, err := c.getOrCompile("b*", CompileFlags{}); err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	if _, err := c.getOrCompile("c*", CompileFlags{}); err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	if got := c.len(); got != 2 {
		t.Fatalf("expected cache capped at 2 entries, got %d", got)
	}
}

func TestPatternCacheConcurrentMisses(t *testing.T) {
	t.Parallel()
	c := NewPatternCache(8)

	var wg sync.WaitGroup
	results := make([]*Pattern, 16)
	errs := make([]error, 16)

	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.getOrCompile("**/*.go", CompileFlags{})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d error: %v", i, err)
		}
		if results[i] == nil {
			t.Fatalf("goroutine %d returned a nil Pattern", i)
		}
	}
}

func TestPatternCacheClear(t *testing.T) {
	t.Parallel()
	c := NewPatternCache(4)
	if _, err := c.getOrCompile("*.go", CompileFlags{}); err != nil {
		t.Fatalf("getOrCompile error: %v", err)
	}
	c.clear()
	if got := c.len(); got != 0 {
		t.Fatalf("expected empty cache after clear, got len %d", got)
	}
}
