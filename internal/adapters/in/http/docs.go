package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openapiDoc serves the contract to the swagger UI as JSON.
type openapiDoc struct {
	doc  *openapi3.T
	once sync.Once
	json string
}

func (d *openapiDoc) ReadDoc() string {
	d.once.Do(func() {
		b, err := d.doc.MarshalJSON()
		if err != nil {
			d.json = "{}"
			return
		}
		d.json = string(b)
	})
	return d.json
}

var registerDocOnce sync.Once

// registerDoc makes doc available to echo-swagger under the default instance.
// swag keeps a process-wide registry that panics on duplicates.
func registerDoc(doc *openapi3.T) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, &openapiDoc{doc: doc})
	})
}
