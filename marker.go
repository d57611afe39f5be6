package authform

// Marker applies the presentation class while the form is mounted.
type Marker interface {
	Add(class string)
	Remove(class string)
}

// Mount adds the body class and returns the release func. Release removes the
// class once, however many times it is called; the host should defer it.
// Mounting an already mounted form returns the existing release.
func (f *AuthForm) Mount() (release func()) {
	if f.release != nil {
		return f.release
	}
	f.cfg.Marker.Add(f.cfg.BodyClass)
	f.log.Debug("auth form mounted", "class", f.cfg.BodyClass)

	done := false
	f.release = func() {
		if done {
			return
		}
		done = true
		f.cfg.Marker.Remove(f.cfg.BodyClass)
		f.release = nil
		f.log.Debug("auth form unmounted", "class", f.cfg.BodyClass)
	}
	return f.release
}

// Unmount releases the current mount, if any.
func (f *AuthForm) Unmount() {
	if f.release != nil {
		f.release()
	}
}

func (f *AuthForm) Mounted() bool { return f.release != nil }
