//go:build wasm

package authform

import "syscall/js"

// Bind renders the form into root and routes DOM events to the form. The
// returned release detaches every listener.
func (f *AuthForm) Bind(root js.Value) (release func()) {
	render := func() {
		root.Set("innerHTML", f.RenderHTML())
		f.syncInputs(root)
	}

	onInput := js.FuncOf(func(this js.Value, args []js.Value) any {
		target := args[0].Get("target")
		name := target.Get("name").String()
		if name == "accountType" {
			if a, err := ParseAccountType(target.Get("value").String()); err == nil {
				f.SelectAccountType(a)
			}
			return nil
		}
		u, err := UpdateFor(name, target.Get("value").String(), target.Get("checked").Truthy())
		if err != nil {
			return nil
		}
		f.Apply(u)
		return nil
	})

	onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
		el := args[0].Get("target").Call("closest", "[data-action]")
		if el.IsNull() {
			return nil
		}
		switch el.Get("dataset").Get("action").String() {
		case "close":
			f.Close()
		case "mode":
			if m, err := ParseFormMode(el.Get("dataset").Get("mode").String()); err == nil {
				f.SetMode(m)
				render()
			}
		case "identity":
			f.ContinueWithIdentity()
		}
		return nil
	})

	// submit only fires once the browser's required checks pass.
	onSubmit := js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		f.Submit()
		render()
		return nil
	})

	root.Call("addEventListener", "input", onInput)
	root.Call("addEventListener", "change", onInput)
	root.Call("addEventListener", "click", onClick)
	root.Call("addEventListener", "submit", onSubmit)
	render()

	return func() {
		root.Call("removeEventListener", "input", onInput)
		root.Call("removeEventListener", "change", onInput)
		root.Call("removeEventListener", "click", onClick)
		root.Call("removeEventListener", "submit", onSubmit)
		onInput.Release()
		onClick.Release()
		onSubmit.Release()
	}
}

// syncInputs copies retained values into freshly rendered text inputs.
func (f *AuthForm) syncInputs(root js.Value) {
	values := map[string]string{
		FieldEmail.String():           f.fields.Email,
		FieldPassword.String():        f.fields.Password,
		FieldUsername.String():        f.fields.Username,
		FieldConfirmPassword.String(): f.fields.ConfirmPassword,
	}
	for name, v := range values {
		nodes := root.Call("querySelectorAll", `input[name="`+name+`"]`)
		for i := 0; i < nodes.Length(); i++ {
			nodes.Index(i).Set("value", v)
		}
	}
}
