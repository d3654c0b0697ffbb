// Package pager displays text in fixed-size chunks of lines and asks the user
// whether to continue between chunks.
//
// The pager is line-buffered: after every chunk except the last it writes a
// prompt and reads one response line. A response of "y" or "Y" shows the next
// chunk; anything else, including end of input, stops paging.
//
// Typical use:
//
//	p, err := pager.New(pager.WithPageSize(20))
//	if err != nil {
//		return err
//	}
//	res, err := p.Page(ctx, text)
package pager
