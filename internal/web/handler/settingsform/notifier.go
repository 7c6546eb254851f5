package settingsform

// notices collects dialog notices until the next render. Confirmation is
// answered from the submitted form.
type notices struct {
	confirmed bool
	infos     []string
	errors    []string
}

func (n *notices) Confirm(string) bool { return n.confirmed }
func (n *notices) Info(msg string)     { n.infos = append(n.infos, msg) }
func (n *notices) Error(msg string)    { n.errors = append(n.errors, msg) }

// Flash holds the messages shown above the form.
type Flash struct {
	Infos  []string
	Errors []string
}

func (n *notices) drain() Flash {
	f := Flash{Infos: n.infos, Errors: n.errors}
	n.infos, n.errors = nil, nil

	return f
}
