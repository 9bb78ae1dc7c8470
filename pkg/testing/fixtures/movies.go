// Marquee
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <http://www.gnu.org/licenses/>.

// Package fixtures holds sample catalogs and review datasets for tests.
package fixtures

// CatalogCSV is a small catalog using the primary column names.
const CatalogCSV = `title,poster_url,genre_ids,release_date,vote_average,overview
The Matrix,https://image.example/matrix.jpg,"[28, 878]",1999-03-31,8.2,A hacker learns the truth about reality.
Matrix Reloaded,https://image.example/reloaded.jpg,"[28, 878]",2003-05-15,7.0,Neo continues the fight.
Interstellar,https://image.example/interstellar.jpg,"[12, 18, 878]",2014-11-05,8.4,Explorers travel through a wormhole.
Inception,https://image.example/inception.jpg,"[28, 878, 12]",2010-07-15,8.4,A thief steals secrets through dreams.
`

// RatedCatalogCSV uses the synonym columns and doubles as a title/rating
// training set with both classes.
const RatedCatalogCSV = `title,poster_url,genre,release_date,rating,description
The Matrix,https://image.example/matrix.jpg,Action,1999-03-31,8.2,A hacker learns the truth about reality.
Matrix Reloaded,https://image.example/reloaded.jpg,Action,2003-05-15,7.0,Neo continues the fight.
Interstellar,https://image.example/interstellar.jpg,Drama,2014-11-05,8.4,Explorers travel through a wormhole.
Inception,https://image.example/inception.jpg,Action,2010-07-15,8.4,A thief steals secrets through dreams.
Catwoman,https://image.example/catwoman.jpg,Action,2004-07-22,3.4,A designer gains feline powers.
Battlefield Earth,https://image.example/battlefield.jpg,Sci-Fi,2000-05-12,2.5,Aliens rule the planet.
`

// RatedCatalogTitles lists the titles of RatedCatalogCSV in order.
var RatedCatalogTitles = []string{
	"The Matrix", "Matrix Reloaded", "Interstellar", "Inception", "Catwoman", "Battlefield Earth",
}

// CatalogTitles lists the titles of CatalogCSV in order.
var CatalogTitles = []string{"The Matrix", "Matrix Reloaded", "Interstellar", "Inception"}

// ReviewsCSV is a labelled review dataset with words that separate the two
// classes cleanly.
const ReviewsCSV = `review,sentiment
"A wonderful, brilliant film with superb acting",positive
"Brilliant story and a wonderful cast",positive
"Superb direction, a masterpiece",positive
"Terrible plot and boring characters",negative
"An awful, dreadful mess",negative
"Boring and terrible from start to finish",negative
`

// PositiveReviews and NegativeReviews form a legacy pos/neg corpus.
var (
	PositiveReviews = []string{
		"a wonderful and moving picture",
		"superb performances, brilliant script",
		"a masterpiece of modern cinema",
	}
	NegativeReviews = []string{
		"dreadful pacing and awful dialogue",
		"a boring, terrible waste of time",
		"the worst film of the year",
	}
)
