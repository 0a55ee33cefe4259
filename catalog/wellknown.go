package catalog

// WellKnown enumerates the recognized request and response header fields of RFC 2616
// section 14. Entries sharing a first letter must stay adjacent, as their order here
// defines the report order within a bucket.
var WellKnown = []string{
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Accept-Ranges",
	"Age",
	"Allow",
	"Authorization",

	"Cache-Control",
	"Connection",
	"Content-Encoding",
	"Content-Language",
	"Content-Length",
	"Content-Location",
	"Content-MD5",
	"Content-Range",
	"Content-Type",

	"Date",

	"ETag",
	"Expect",
	"Expires",

	"From",

	"Host",

	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",

	"Last-Modified",
	"Location",

	"Max-Forwards",

	"Pragma",
	"Proxy-Authenticate",
	"Proxy-Authorization",

	"Range",
	"Referer",
	"Retry-After",

	"Server",

	"TE",
	"Trailer",
	"Transfer-Encoding",

	"Upgrade",
	"User-Agent",

	"Vary",
	"Via",

	"Warning",
	"WWW-Authenticate",
}
