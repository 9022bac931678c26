// Package server serves rendered documents over HTTP and websockets.
//
// Routes:
//
//	POST /render        body is a JSON or YAML document, response is its HTML
//	GET  /docs/{name}   renders name.json, name.yaml or name.yml from DocumentsDir
//	GET  /ws            every text frame is a document, every reply its HTML
//	GET  /healthz       liveness check
//	GET  /metrics       Prometheus metrics, when WithMetrics is used
//
// Failures are answered with the JSON form of the markup error:
//
//	{"code":"E111","category":"validation","message":"Unknown component",...}
//
// Decoding errors are 400, missing documents 404, render failures 500.
// Nothing of a document is written unless it rendered completely.
//
// # Usage
//
//	srv := server.New(server.ConfigFrom(cfg),
//	    server.WithDecoder(document.NewDecoder(opts)),
//	    server.WithMetrics(middleware.NewMetrics(), nil),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Handlers that build trees themselves can reply with HTML:
//
//	func page(w http.ResponseWriter, r *http.Request) {
//	    server.HTML(w, http.StatusOK, vdom.Html(vdom.Body(vdom.H1("Hello"))))
//	}
package server
