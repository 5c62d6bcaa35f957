// Package formhttp exposes a form schema over HTTP.
//
// NewHandler mounts whole-form validation returning JSON and live per-field
// validation returning the field's rendered error block. DataStar clients
// receive the block as an SSE element patch targeting
// render.ErrorsSelector(field); other clients receive the HTML fragment.
//
//	s, _ := schema.Load("signup.yaml")
//	log := logger.New(formhttp.LogRequestID())
//	err := formhttp.Run(ctx, ":8080", formhttp.NewHandler(s, formhttp.WithLogger(log)), log)
//
// The message language comes from the lang query parameter, then the
// Accept-Language header, then the schema.
package formhttp
