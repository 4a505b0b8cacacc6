package interaction_test

import (
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

func (s *ControllerTestSuite) TestDiagramDrag() {
	ct := mech.LocationCenterTorso
	session := s.controller.BeginDrag(ct, interaction.SideFront, 100, interaction.DragDiagram)
	s.Require().NotNil(session)
	s.Equal(10, session.StartValue)
	s.Equal(1, s.document.ListenerCount())
	s.True(s.controller.Dragging())

	s.document.PointerMove(80)
	s.Equal(mech.FrontOnly(20), s.lastChange().change)

	s.document.PointerMove(99)
	s.Equal(mech.FrontOnly(11), s.lastChange().change)

	s.document.PointerMove(101)
	s.Equal(mech.FrontOnly(10), s.lastChange().change)

	s.document.PointerMove(200)
	s.Equal(mech.FrontOnly(0), s.lastChange().change)

	s.document.PointerUp()
	s.Zero(s.document.ListenerCount())
	s.False(s.controller.Dragging())
	s.Nil(s.controller.Drag())

	count := len(s.unit.changes)
	s.document.PointerMove(0)
	session.Move(0)
	s.Len(s.unit.changes, count)
}

func (s *ControllerTestSuite) TestDragIsClampedByTheHost() {
	ct := mech.LocationCenterTorso
	s.unit.alloc[ct] = mech.LocationArmor{Front: 70, Rear: 10}

	s.controller.BeginDrag(ct, interaction.SideFront, 100, interaction.DragDiagram)
	s.document.PointerMove(20)

	s.Equal(mech.FrontOnly(110), s.lastChange().change)
	s.Equal(mech.LocationArmor{Front: 70, Rear: 10}, s.unit.alloc[ct])
	s.controller.EndDrag()
}

func (s *ControllerTestSuite) TestPanelDrag() {
	session := s.controller.BeginDrag(mech.LocationCenterTorso, interaction.SideRear, 50, interaction.DragPanel)
	s.Require().NotNil(session)

	s.Equal(7, session.ValueAt(38))
	s.Equal(8, session.ValueAt(37))
	s.Equal(0, session.ValueAt(500))

	s.document.PointerMove(37)
	s.Equal(mech.RearOnly(8), s.lastChange().change)
	s.controller.Close()
	s.Zero(s.document.ListenerCount())
}

func (s *ControllerTestSuite) TestTouchDrag() {
	session := s.controller.BeginDrag(mech.LocationLeftArm, interaction.SideFront, 300, interaction.DragTouch)
	s.Require().NotNil(session)
	s.Zero(s.document.ListenerCount())

	s.controller.DragMove(275)
	s.Equal(mech.FrontOnly(3), s.lastChange().change)

	s.document.PointerUp()
	s.True(s.controller.Dragging())

	s.controller.EndDrag()
	s.False(s.controller.Dragging())
}

func (s *ControllerTestSuite) TestNewDragEndsThePrevious() {
	first := s.controller.BeginDrag(mech.LocationLeftArm, interaction.SideFront, 0, interaction.DragDiagram)
	second := s.controller.BeginDrag(mech.LocationRightArm, interaction.SideFront, 0, interaction.DragDiagram)

	s.False(first.Active())
	s.True(second.Active())
	s.Equal(1, s.document.ListenerCount())
	s.Same(second, s.controller.Drag())

	s.controller.Close()
	s.Zero(s.document.ListenerCount())
}

func (s *ControllerTestSuite) TestDragRules() {
	s.Nil(s.controller.BeginDrag(mech.LocationLeftArm, interaction.SideRear, 0, interaction.DragDiagram))
	s.Nil(s.controller.BeginDrag(mech.Location("Tail"), interaction.SideFront, 0, interaction.DragDiagram))
	s.Nil(s.controller.BeginDrag(mech.LocationLeftArm, interaction.SideFront, 0, interaction.DragMode("flick")))

	s.controller.Hover(mech.LocationHead)
	s.controller.BeginDrag(mech.LocationLeftArm, interaction.SideFront, 0, interaction.DragDiagram)
	s.controller.Hover(mech.LocationRightLeg)
	hovered, _ := s.controller.Hovered()
	s.Equal(mech.LocationHead, hovered)
	s.controller.EndDrag()
}
