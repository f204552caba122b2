// Package gallery arranges a spot's photos by compass heading and tracks the selection of an
// endlessly wrapping carousel over them.
package gallery

import (
	"sort"

	"github.com/majorfi/spotframe/pkg/utils"
)

/**************************************************************************************************
** Order returns the gallery order of photos: records with a valid heading first, ascending by
** heading, followed by the records without one in their original relative order.
**
** The headed records are sorted with sort.SliceStable, so equal headings keep their original
** order. Headings that are NaN, infinite or outside [0, 360) count as absent. The input slice is
** left untouched and calling Order on its own output returns the same sequence.
**
** @param photos - Photos in any order
** @return []utils.TPhotoRecord - New slice in gallery order
**************************************************************************************************/
func Order(photos []utils.TPhotoRecord) []utils.TPhotoRecord {
	withHeading := make([]utils.TPhotoRecord, 0, len(photos))
	withoutHeading := make([]utils.TPhotoRecord, 0)

	for _, photo := range photos {
		if photo.HasValidHeading() {
			withHeading = append(withHeading, photo)
		} else {
			withoutHeading = append(withoutHeading, photo)
		}
	}

	sort.SliceStable(withHeading, func(i, j int) bool {
		return *withHeading[i].Heading < *withHeading[j].Heading
	})

	return append(withHeading, withoutHeading...)
}

/**************************************************************************************************
** FirstWithHeading returns the index of the first photo carrying a valid heading, or 0 when no
** photo has one. On a slice in gallery order this is always 0.
**
** @param photos - Photos, usually in gallery order
** @return int - Index of the initial selection
**************************************************************************************************/
func FirstWithHeading(photos []utils.TPhotoRecord) int {
	for i, photo := range photos {
		if photo.HasValidHeading() {
			return i
		}
	}
	return 0
}
