// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package merge

import (
	"reflect"
	"testing"

	"github.com/gogpu/scratchcard/host"
)

type fakeNode struct {
	children []string
}

func (*fakeNode) NodeType() host.NodeType { return host.ElementNode }

func defaultTree() Map {
	return Map{
		"container":  nil,
		"imgSrc":     "",
		"size":       []float64{240, 180},
		"percentage": 0.6,
		"layer": Map{
			"background": "#E0E0E0",
			"color":      "#888",
			"lineWidth":  30,
		},
		"onComplete": nil,
	}
}

func TestKindOf(t *testing.T) {
	var nilPtr *fakeNode
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{"nil", nil, KindPrimitive},
		{"string", "x", KindPrimitive},
		{"int", 3, KindPrimitive},
		{"float", 0.5, KindPrimitive},
		{"bool", true, KindPrimitive},
		{"slice", []int{1}, KindSequence},
		{"any slice", []any{1, "a"}, KindSequence},
		{"array", [2]float64{1, 2}, KindSequence},
		{"func", func() {}, KindCallable},
		{"node", &fakeNode{}, KindOpaque},
		{"nil node", nilPtr, KindOpaque},
		{"pointer", new(int), KindOpaque},
		{"struct", struct{ A int }{1}, KindOpaque},
		{"other map", map[int]string{}, KindOpaque},
		{"map", Map{"a": 1}, KindStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf(%T) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestResolveKeepsDefaults(t *testing.T) {
	got := Resolve(Map{"imgSrc": "win.png"}, defaultTree())
	for key := range defaultTree() {
		if _, ok := got[key]; !ok {
			t.Errorf("key %q missing from result", key)
		}
	}
	if got["imgSrc"] != "win.png" {
		t.Errorf("imgSrc = %v, want win.png", got["imgSrc"])
	}
	if got["percentage"] != 0.6 {
		t.Errorf("percentage = %v, want default 0.6", got["percentage"])
	}
}

func TestResolveScalarOverrides(t *testing.T) {
	got := Resolve(Map{"percentage": "0.8", "imgSrc": "a.png"}, defaultTree())
	if got["percentage"] != "0.8" {
		t.Errorf("percentage = %v, want \"0.8\"", got["percentage"])
	}
}

func TestResolveNestedMergesFieldByField(t *testing.T) {
	got := Resolve(Map{"layer": Map{"lineWidth": 10, "text": "hi"}}, defaultTree())
	layer, ok := got["layer"].(Map)
	if !ok {
		t.Fatalf("layer = %T, want Map", got["layer"])
	}
	want := Map{"background": "#E0E0E0", "color": "#888", "lineWidth": 10, "text": "hi"}
	if !reflect.DeepEqual(layer, want) {
		t.Errorf("layer = %v, want %v", layer, want)
	}
}

func TestResolveSequenceIsCopied(t *testing.T) {
	size := []float64{100, 50}
	user := Map{"size": size}
	got := Resolve(user, defaultTree())

	resolved := got["size"].([]float64)
	if !reflect.DeepEqual(resolved, []float64{100, 50}) {
		t.Fatalf("size = %v, want [100 50]", resolved)
	}

	size[0] = 1
	if resolved[0] != 100 {
		t.Error("mutating the user slice changed the resolved config")
	}
	resolved[1] = 2
	if size[1] != 50 {
		t.Error("mutating the resolved slice changed the user slice")
	}
}

func TestResolveNestedSequenceCopied(t *testing.T) {
	inner := []any{Map{"x": 1}}
	got := Resolve(Map{"points": inner}, nil)

	points := got["points"].([]any)
	points[0].(Map)["x"] = 99
	if inner[0].(Map)["x"] != 1 {
		t.Error("nested map inside a sequence was aliased")
	}
}

func TestResolveCallableReplaces(t *testing.T) {
	calls := 0
	fn := func() { calls++ }
	got := Resolve(Map{"onComplete": fn}, defaultTree())

	cb, ok := got["onComplete"].(func())
	if !ok {
		t.Fatalf("onComplete = %T, want func()", got["onComplete"])
	}
	cb()
	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
}

func TestResolveOpaqueShared(t *testing.T) {
	node := &fakeNode{children: []string{"a"}}
	got := Resolve(Map{"container": node}, defaultTree())
	if got["container"] != node {
		t.Error("node reference was not copied as is")
	}
}

func TestResolveNilUserClonesDefaults(t *testing.T) {
	defaults := defaultTree()
	got := Resolve(nil, defaults)
	if !reflect.DeepEqual(got, defaults) {
		t.Fatalf("Resolve(nil) = %v, want %v", got, defaults)
	}

	got["layer"].(Map)["color"] = "red"
	got["size"].([]float64)[0] = 1
	if defaults["layer"].(Map)["color"] != "#888" {
		t.Error("result shares nested map with defaults")
	}
	if defaults["size"].([]float64)[0] != 240 {
		t.Error("result shares slice with defaults")
	}
}

func TestResolveUserOnlyKeysPreserved(t *testing.T) {
	got := Resolve(Map{"validArea": []int{0, 0, 10, 10}, "extra": Map{"a": 1}}, defaultTree())
	if !reflect.DeepEqual(got["validArea"], []int{0, 0, 10, 10}) {
		t.Errorf("validArea = %v", got["validArea"])
	}
	if !reflect.DeepEqual(got["extra"], Map{"a": 1}) {
		t.Errorf("extra = %v", got["extra"])
	}
}

func TestResolveMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		user     Map
		defaults Map
	}{
		{"both nil", nil, nil},
		{"structure over scalar", Map{"percentage": Map{"a": 1}}, defaultTree()},
		{"scalar over structure", Map{"layer": 7}, defaultTree()},
		{"nil slice", Map{"size": []float64(nil)}, defaultTree()},
		{"nil func", Map{"onComplete": (func())(nil)}, defaultTree()},
		{"nil interface elements", Map{"list": []any{nil, 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.user, tt.defaults)
			if got == nil {
				t.Error("Resolve returned nil")
			}
		})
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	defaults := defaultTree()
	user := Map{"layer": Map{"lineWidth": 5}}
	_ = Resolve(user, defaults)

	if defaults["layer"].(Map)["lineWidth"] != 30 {
		t.Error("defaults were modified")
	}
	if len(user["layer"].(Map)) != 1 {
		t.Error("user tree was modified")
	}
}

func TestCloneArray(t *testing.T) {
	arr := [2]any{Map{"a": 1}, 2}
	c := Clone(arr).([2]any)
	c[0].(Map)["a"] = 5
	if arr[0].(Map)["a"] != 1 {
		t.Error("array element map was aliased")
	}
}

func TestResolveCyclic(t *testing.T) {
	self := Map{"fillColor": "#000"}
	self["coverStyle"] = self

	loop := []any{1}
	loop[0] = loop

	tests := []struct {
		name string
		user Map
	}{
		{"map contains itself", self},
		{"nested back reference", Map{"coverStyle": Map{"parent": self}}},
		{"slice contains itself", Map{"size": loop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.user, Map{"coverStyle": Map{"fillColor": "#fff"}})
			if got == nil {
				t.Fatal("Resolve returned nil")
			}
			if _, ok := got["coverStyle"].(Map); !ok {
				t.Errorf("coverStyle = %T, want Map", got["coverStyle"])
			}
		})
	}
}

func TestResolveCyclicKeepsReference(t *testing.T) {
	user := Map{"labelText": "x"}
	user["coverStyle"] = user

	got := Resolve(user, Map{"coverStyle": Map{"fillColor": "#fff"}})
	if got["labelText"] != "x" {
		t.Errorf("labelText = %v, want x", got["labelText"])
	}
	style := got["coverStyle"].(Map)
	if reflect.ValueOf(style).UnsafePointer() != reflect.ValueOf(user).UnsafePointer() {
		t.Error("back reference was not kept as is")
	}
}

func TestCloneCyclic(t *testing.T) {
	m := Map{"a": 1}
	m["self"] = m

	c := Clone(m).(Map)
	c["a"] = 2
	if m["a"] != 1 {
		t.Error("clone aliased the outer map")
	}
}

func TestCloneSharedSubtreeCopied(t *testing.T) {
	shared := Map{"v": 1}
	m := Map{"x": shared, "y": shared}

	c := Clone(m).(Map)
	c["x"].(Map)["v"] = 2
	if c["y"].(Map)["v"] != 1 || shared["v"] != 1 {
		t.Error("non-cyclic shared subtree was aliased")
	}
}
