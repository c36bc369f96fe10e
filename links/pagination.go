/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package links

import (
	"net/url"
	"strconv"
)

// Query parameter names used by every pagination link. They are reserved:
// extra parameters with these names are replaced, never duplicated.
const (
	pageParam = "page"
	sizeParam = "size"
)

// Pagination builds navigation sets of absolute, versioned, query-encoded
// URIs for paged collections. It holds no per-request state: the page
// descriptor (page, size, totalPages) is supplied on every call, so a
// single Pagination value is safely shared across requests.
type Pagination struct {
	api *API
}

// NewPagination wraps an already-configured API link builder.
func NewPagination(api *API) *Pagination {
	return &Pagination{api: api}
}

// Nav is the navigation set for one page of a collection. All five links
// are always present; on a single-page collection Prev, Next and Self are
// equal, which is self-consistent rather than an error.
type Nav struct {
	Self  *url.URL
	First *url.URL
	Prev  *url.URL
	Next  *url.URL
	Last  *url.URL
}

// Link is one rel/URI pair of a navigation set, in RFC 8288 terms.
type Link struct {
	Rel string
	URL *url.URL
}

// Links returns the navigation set as an ordered rel list, ready for
// Link-header rendering or HAL-style embedding.
func (n Nav) Links() []Link {
	return []Link{
		{"self", n.Self},
		{"first", n.First},
		{"prev", n.Prev},
		{"next", n.Next},
		{"last", n.Last},
	}
}

// Page builds the URI of one page of a top-level collection:
//
//	Page("users", 2, 20, nil) -> {apiBase}/users?page=2&size=20
//
// Extra query parameters (search text, filters) are merged in and
// percent-encoded; key order in the encoded query is deterministic
// (sorted), so equal inputs produce byte-equal URIs.
func (p *Pagination) Page(segment string, page, size int, extra url.Values) *url.URL {
	return paged(p.api.Collection(segment), page, size, extra)
}

// PagePath is the nested-path variant of Page:
//
//	PagePath("users/42/orders", 0, 10, nil)
func (p *Pagination) PagePath(path string, page, size int, extra url.Values) *url.URL {
	return paged(p.api.Path(path), page, size, extra)
}

// Nav builds the full navigation set for a top-level collection.
//
// The requested page index is clamped into [0, max(0, totalPages-1)] before
// any link is built, so an out-of-range request still yields a consistent
// set. The extra parameters are threaded through every link identically;
// pagination never silently drops a filter.
func (p *Pagination) Nav(segment string, page, size, totalPages int, extra url.Values) Nav {
	return p.nav(func(pg int) *url.URL { return p.Page(segment, pg, size, extra) }, page, totalPages)
}

// NavPath is the nested-path variant of Nav, with the identical clamping
// algorithm:
//
//	NavPath("users/42/orders", page, size, totalPages, filters)
func (p *Pagination) NavPath(path string, page, size, totalPages int, extra url.Values) Nav {
	return p.nav(func(pg int) *url.URL { return p.PagePath(path, pg, size, extra) }, page, totalPages)
}

// nav applies the clamping algorithm and materializes the five links via
// the supplied single-page builder.
func (p *Pagination) nav(page func(int) *url.URL, requested, totalPages int) Nav {
	last := totalPages - 1
	if last < 0 {
		last = 0
	}
	cur := 0
	if totalPages > 0 {
		cur = min(max(requested, 0), last)
	}
	return Nav{
		Self:  page(cur),
		First: page(0),
		Prev:  page(max(0, cur-1)),
		Next:  page(min(last, cur+1)),
		Last:  page(last),
	}
}

// paged attaches the page descriptor and extras to a collection URI.
func paged(u *url.URL, page, size int, extra url.Values) *url.URL {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	q := url.Values{}
	for k, vs := range extra {
		if k == pageParam || k == sizeParam {
			continue // reserved; always set below
		}
		q[k] = append([]string(nil), vs...)
	}
	q.Set(pageParam, strconv.Itoa(page))
	q.Set(sizeParam, strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return u
}
