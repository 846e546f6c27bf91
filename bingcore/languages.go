/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bingcore

// officialLanguages lists official (incl. de-facto) languages per country
// code, CLDR-derived, restricted to the countries Bing's region page offers.
// Script-qualified tags (zh-Hant) are collapsed to their base subtag during
// the trait crawl. Countries missing from the table are skipped, not errors.
var officialLanguages = map[string][]string{
	"ae": {"ar"},
	"ar": {"es"},
	"at": {"de"},
	"au": {"en"},
	"be": {"nl", "fr", "de"},
	"br": {"pt"},
	"ca": {"en", "fr"},
	"ch": {"de", "fr", "it"},
	"cl": {"es"},
	"cn": {"zh-Hans"},
	"de": {"de"},
	"dk": {"da"},
	"es": {"es"},
	"fi": {"fi", "sv"},
	"fr": {"fr"},
	"gb": {"en"},
	"hk": {"zh-Hant", "en"},
	"id": {"id"},
	"ie": {"en", "ga"},
	"in": {"hi", "en"},
	"it": {"it"},
	"jp": {"ja"},
	"kr": {"ko"},
	"mx": {"es"},
	"my": {"ms", "en"},
	"nl": {"nl"},
	"no": {"nb"},
	"nz": {"en"},
	"ph": {"en", "fil"},
	"pl": {"pl"},
	"pt": {"pt"},
	"ru": {"ru"},
	"sa": {"ar"},
	"se": {"sv"},
	"th": {"th"},
	"tr": {"tr"},
	"tw": {"zh-Hant"},
	"us": {"en", "es"},
	"vn": {"vi"},
	"za": {"en", "af", "zu", "xh"},
}
