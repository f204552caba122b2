package gallery

import "github.com/majorfi/spotframe/pkg/utils"

/**************************************************************************************************
** Gallery is an open carousel: the photos in gallery order plus the index selecting one of them.
** It is created when a gallery is opened and dropped when it is closed; nothing is persisted.
**************************************************************************************************/
type Gallery struct {
	photos []utils.TPhotoRecord
	index  *CircularIndex
}

/**************************************************************************************************
** Open orders photos and positions the carousel on the first photo with a heading, or the first
** photo when none has one.
**
** @param photos - Photo collection in any order
** @return *Gallery - Open gallery
**************************************************************************************************/
func Open(photos []utils.TPhotoRecord) *Gallery {
	ordered := Order(photos)
	return &Gallery{
		photos: ordered,
		index:  NewCircularIndex(len(ordered), FirstWithHeading(ordered)),
	}
}

// Photos returns the photos in gallery order.
func (g *Gallery) Photos() []utils.TPhotoRecord {
	return g.photos
}

// Index returns the carousel index driving the selection.
func (g *Gallery) Index() *CircularIndex {
	return g.index
}

/**************************************************************************************************
** Current returns the committed photo. ok is false for an empty gallery.
**
** @return utils.TPhotoRecord - Selected photo
** @return bool - False when there is no selection
**************************************************************************************************/
func (g *Gallery) Current() (utils.TPhotoRecord, bool) {
	i, ok := g.index.Committed()
	if !ok {
		return utils.TPhotoRecord{}, false
	}
	return g.photos[i], true
}

/**************************************************************************************************
** Select makes the photo with the given ID current, as requested by another view, and settles
** the move. It returns false when no photo has that ID.
**
** @param id - ID of the photo to select
** @return bool - True if the photo was found
**************************************************************************************************/
func (g *Gallery) Select(id string) bool {
	for i, photo := range g.photos {
		if photo.ID == id {
			g.index.SyncExternal(i)
			g.index.Settle()
			return true
		}
	}
	return false
}
