//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/mindloom/mindloom/backend-go/internal/engine"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine()

	// Create the engine API object
	mindloomEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	mindloomEngine.Set("loadDocument", js.FuncOf(loadDocument))
	mindloomEngine.Set("updateDocument", js.FuncOf(updateDocument))
	mindloomEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	mindloomEngine.Set("setStructure", js.FuncOf(setStructure))
	mindloomEngine.Set("setLayoutConfig", js.FuncOf(setLayoutConfig))
	mindloomEngine.Set("setView", js.FuncOf(setView))
	mindloomEngine.Set("setViewport", js.FuncOf(setViewport))
	mindloomEngine.Set("setSelection", js.FuncOf(setSelection))
	mindloomEngine.Set("setSelectedRelationship", js.FuncOf(setSelectedRelationship))
	mindloomEngine.Set("setRelationshipLabelPosition", js.FuncOf(setRelationshipLabelPosition))

	// --- Queries (frontend ← backend) ---
	mindloomEngine.Set("render", js.FuncOf(render))
	mindloomEngine.Set("hitTestNode", js.FuncOf(hitTestNode))
	mindloomEngine.Set("hitTestRelationship", js.FuncOf(hitTestRelationship))
	mindloomEngine.Set("hitTestControlPoint", js.FuncOf(hitTestControlPoint))
	mindloomEngine.Set("hitTestRelationshipLabel", js.FuncOf(hitTestRelationshipLabel))
	mindloomEngine.Set("screenToWorld", js.FuncOf(screenToWorld))
	mindloomEngine.Set("worldToScreen", js.FuncOf(worldToScreen))
	mindloomEngine.Set("getMapBounds", js.FuncOf(getMapBounds))
	mindloomEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	mindloomEngine.Set("getDocument", js.FuncOf(getDocument))
	mindloomEngine.Set("getSelection", js.FuncOf(getSelection))
	mindloomEngine.Set("getStructure", js.FuncOf(getStructure))

	// Register on global scope
	js.Global().Set("mindloomEngine", mindloomEngine)

	// Signal that WASM is ready
	js.Global().Set("mindloomWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	jsonData := args[0].String()
	if err := eng.LoadDocument(jsonData); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func updateDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	jsonData := args[0].String()
	if err := eng.UpdateDocument(jsonData); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	projectID := "proj_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		projectID = args[0].String()
	}

	eng.LoadSampleDocument(projectID)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setStructure(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetStructure(args[0].String())
	return nil
}

func setLayoutConfig(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if err := eng.SetLayoutConfig(args[0].String()); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setView(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	eng.SetView(args[0].Float(), args[1].Float(), args[2].Float())
	return nil
}

func setViewport(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	eng.SetViewport(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float())
	return nil
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	if arr.Type() != js.TypeObject {
		eng.SetSelection(nil)
		return nil
	}

	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	eng.SetSelection(ids)
	return nil
}

func setSelectedRelationship(this js.Value, args []js.Value) interface{} {
	id := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		id = args[0].String()
	}
	eng.SetSelectedRelationship(id)
	return nil
}

func setRelationshipLabelPosition(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	eng.SetRelationshipLabelPosition(args[0].String(), args[1].Float(), args[2].Float())
	return nil
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTestNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	return js.ValueOf(eng.HitTestNode(args[0].Float(), args[1].Float()))
}

func hitTestRelationship(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	return js.ValueOf(eng.HitTestRelationship(args[0].Float(), args[1].Float()))
}

func hitTestControlPoint(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("null")
	}
	return js.ValueOf(eng.HitTestControlPoint(args[0].Float(), args[1].Float()))
}

func hitTestRelationshipLabel(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	return js.ValueOf(eng.HitTestRelationshipLabel(args[0].Float(), args[1].Float()))
}

func screenToWorld(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("{}")
	}
	return js.ValueOf(eng.ScreenToWorldPoint(args[0].Float(), args[1].Float()))
}

func worldToScreen(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("{}")
	}
	return js.ValueOf(eng.WorldToScreenPoint(args[0].Float(), args[1].Float()))
}

func getMapBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetMapBounds())
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetDocument())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelection())
}

func getStructure(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetStructure())
}
