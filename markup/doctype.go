package markup

// Doctype selects the declaration prepended to a rendered Document.
type Doctype string

const (
	HTML5        Doctype = "5"
	Strict       Doctype = "strict"
	Transitional Doctype = "transitional"
	Frameset     Doctype = "frameset"
)

const doctypePrefix = "<!DOCTYPE HTML"

var doctypes = map[Doctype]string{
	HTML5:        doctypePrefix + ">",
	Strict:       doctypePrefix + ` PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	Transitional: doctypePrefix + ` PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
	Frameset:     doctypePrefix + ` PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`,
}

// DoctypeDeclaration returns the declaration for version. Unknown versions
// get the HTML5 declaration.
func DoctypeDeclaration(version Doctype) string {
	if d, ok := doctypes[version]; ok {
		return d
	}
	log.WithField("doctype", string(version)).Debug("unknown doctype, using HTML5")
	return doctypes[HTML5]
}
