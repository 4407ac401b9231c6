package types

import (
	"fmt"

	"fortio.org/safecast"
)

// ModuleInfo stores the diagnostic identity of a module type. The name is
// used for rendering and structural equality only, never for computation.
type ModuleInfo struct {
	Name string
}

// ModuleAttrInfo stores the identity of a module-attribute type: the
// originating module and the attribute name.
type ModuleAttrInfo struct {
	Module TypeID
	Attr   string
}

// Module creates or finds the module type with the given name.
func (in *Interner) Module(name string) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindModule {
			continue
		}
		if int(tt.Payload) >= len(in.modules) {
			continue
		}
		if in.modules[tt.Payload].Name == name {
			return id
		}
	}
	in.modules = append(in.modules, ModuleInfo{Name: name})
	slot, err := safecast.Conv[uint32](len(in.modules) - 1)
	if err != nil {
		panic(fmt.Errorf("module slot overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindModule, Payload: slot})
}

// ModuleInfo retrieves module metadata by TypeID.
func (in *Interner) ModuleInfo(id TypeID) (*ModuleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindModule {
		return nil, false
	}
	if int(tt.Payload) >= len(in.modules) {
		return nil, false
	}
	return &in.modules[tt.Payload], true
}

// ModuleAttr creates or finds the type of an attribute access on a module
// type.
func (in *Interner) ModuleAttr(module TypeID, attr string) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindModuleAttr {
			continue
		}
		if int(tt.Payload) >= len(in.attrs) {
			continue
		}
		info := in.attrs[tt.Payload]
		if info.Module == module && info.Attr == attr {
			return id
		}
	}
	in.attrs = append(in.attrs, ModuleAttrInfo{Module: module, Attr: attr})
	slot, err := safecast.Conv[uint32](len(in.attrs) - 1)
	if err != nil {
		panic(fmt.Errorf("module attr slot overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindModuleAttr, Payload: slot})
}

// ModuleAttrInfo retrieves module-attribute metadata by TypeID.
func (in *Interner) ModuleAttrInfo(id TypeID) (*ModuleAttrInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindModuleAttr {
		return nil, false
	}
	if int(tt.Payload) >= len(in.attrs) {
		return nil, false
	}
	return &in.attrs[tt.Payload], true
}
