/*
 * Copyright (c) 2024 Gilles Chehade <gilles@poolp.org>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package serializer encodes scan results for storage or transport,
// in a compact binary form (msgpack) and a self-describing text form
// (JSON). The scan engine itself is encoding-agnostic.
package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/PlakarLabs/go-scandir/objects"
	"github.com/vmihailenco/msgpack/v5"
)

type resultKind int8

const (
	kindEntry    resultKind = 0
	kindEntryExt resultKind = 1
	kindError    resultKind = 2
)

// envelope carries the tag of the result union across encodings that
// cannot represent Go interfaces directly.
type envelope struct {
	Kind     resultKind           `json:"Kind" msgpack:"kind"`
	Entry    *objects.Entry       `json:"Entry,omitempty" msgpack:"entry,omitempty"`
	EntryExt *objects.EntryExt    `json:"EntryExt,omitempty" msgpack:"entryExt,omitempty"`
	Error    *objects.ErrorRecord `json:"Error,omitempty" msgpack:"error,omitempty"`
}

type resultsEnvelope struct {
	Results []envelope            `json:"Results" msgpack:"results"`
	Errors  []objects.ErrorRecord `json:"Errors" msgpack:"errors"`
}

func wrap(result objects.Result) (envelope, error) {
	switch result := result.(type) {
	case objects.Entry:
		return envelope{Kind: kindEntry, Entry: &result}, nil
	case objects.EntryExt:
		return envelope{Kind: kindEntryExt, EntryExt: &result}, nil
	case objects.ErrorRecord:
		return envelope{Kind: kindError, Error: &result}, nil
	default:
		return envelope{}, fmt.Errorf("unexpected result type %T", result)
	}
}

func unwrap(env envelope) (objects.Result, error) {
	switch env.Kind {
	case kindEntry:
		if env.Entry == nil {
			return nil, fmt.Errorf("entry envelope without entry")
		}
		return *env.Entry, nil
	case kindEntryExt:
		if env.EntryExt == nil {
			return nil, fmt.Errorf("extended entry envelope without entry")
		}
		return *env.EntryExt, nil
	case kindError:
		if env.Error == nil {
			return nil, fmt.Errorf("error envelope without error record")
		}
		return *env.Error, nil
	default:
		return nil, fmt.Errorf("unexpected result kind %d", env.Kind)
	}
}

func seal(results *objects.Results) (*resultsEnvelope, error) {
	sealed := &resultsEnvelope{
		Results: make([]envelope, 0, len(results.Results)),
		Errors:  make([]objects.ErrorRecord, len(results.Errors)),
	}
	for _, result := range results.Results {
		env, err := wrap(result)
		if err != nil {
			return nil, err
		}
		sealed.Results = append(sealed.Results, env)
	}
	copy(sealed.Errors, results.Errors)
	return sealed, nil
}

func open(sealed *resultsEnvelope) (*objects.Results, error) {
	results := objects.NewResults()
	for _, env := range sealed.Results {
		result, err := unwrap(env)
		if err != nil {
			return nil, err
		}
		results.Results = append(results.Results, result)
	}
	results.Errors = append(results.Errors[:0], sealed.Errors...)
	return results, nil
}

func ToMsgpack(results *objects.Results) ([]byte, error) {
	sealed, err := seal(results)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(sealed)
}

func FromMsgpack(data []byte) (*objects.Results, error) {
	var sealed resultsEnvelope
	if err := msgpack.Unmarshal(data, &sealed); err != nil {
		return nil, err
	}
	return open(&sealed)
}

func ToJSON(results *objects.Results) ([]byte, error) {
	sealed, err := seal(results)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sealed)
}

func FromJSON(data []byte) (*objects.Results, error) {
	var sealed resultsEnvelope
	if err := json.Unmarshal(data, &sealed); err != nil {
		return nil, err
	}
	return open(&sealed)
}
