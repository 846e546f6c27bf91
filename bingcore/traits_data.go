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

// DefaultTraits returns a builtin locale→market table snapshot so the client
// works without running cmd/fetchtraits first. Regenerate with the CLI when
// Bing's region page changes.
func DefaultTraits() *TraitTable {
	return &TraitTable{
		allLocale: allLocaleSentinel,
		regions: map[string]string{
			"ar-AE": "ar-ae",
			"ar-SA": "ar-sa",
			"da-DK": "da-dk",
			"de-AT": "de-at",
			"de-CH": "de-ch",
			"de-DE": "de-de",
			"en-AU": "en-au",
			"en-CA": "en-ca",
			"en-GB": "en-gb",
			"en-ID": "en-id",
			"en-IE": "en-ie",
			"en-IN": "en-in",
			"en-MY": "en-my",
			"en-NZ": "en-nz",
			"en-PH": "en-ph",
			"en-US": "en-us",
			"en-ZA": "en-za",
			"es-AR": "es-ar",
			"es-CL": "es-cl",
			"es-ES": "es-es",
			"es-MX": "es-mx",
			"es-US": "es-us",
			"fi-FI": "fi-fi",
			"fr-BE": "fr-be",
			"fr-CA": "fr-ca",
			"fr-CH": "fr-ch",
			"fr-FR": "fr-fr",
			"hi-IN": "hi-in",
			"id-ID": "id-id",
			"it-CH": "it-ch",
			"it-IT": "it-it",
			"ja-JP": "ja-jp",
			"ko-KR": "ko-kr",
			"ms-MY": "ms-my",
			"nb-NO": "nb-no",
			"nl-BE": "nl-be",
			"nl-NL": "nl-nl",
			"pl-PL": "pl-pl",
			"pt-BR": "pt-br",
			"pt-PT": "pt-pt",
			"ru-RU": "ru-ru",
			"sv-SE": "sv-se",
			"th-TH": "th-th",
			"tr-TR": "tr-tr",
			"vi-VN": "vi-vn",
			"zh-CN": "zh-cn",
			// en-hk is what Bing actually uses for Hong Kong, it does not
			// indicate the language en.
			"zh-HK": "en-hk",
			"zh-TW": "zh-tw",
		},
	}
}

// DefaultNewsTraits returns the builtin table with the news-specific fixups
// applied, see FetchNewsTraits.
func DefaultNewsTraits() *TraitTable {
	t := DefaultTraits()
	applyNewsOverrides(t)
	return t
}
