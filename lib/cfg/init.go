package cfg

import "time"

// The static host for the API. Every builder request goes here; only
// transfer URLs (download_url/stream_url) may point at other hosts.
const APIHost = "api.soundcloud.com"

// default fasthttp useragent tends to get connections stuck, so present a browser one
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.3"

// time-to-live for dns cache
const DNSCacheTTL = 10 * time.Minute

// fallback deadline for a single API request when the caller's context has none
const RequestTimeout = 30 * time.Second

// deadline for following the one redirect hop on a transfer, so an
// unresponsive upstream can't stall the caller forever
const RedirectTimeout = 15 * time.Second

// size of the pooled scratch buffer used when copying a transfer body to the sink
const CopyChunkSize = 32 * 1024
